package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// GetOrderUseCase 订单详情用例
// 普通用户只能查看自己的订单，管理员可查看任意订单
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 按ID查询订单（含明细）
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID uint, clientName string, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !o.IsOwnedBy(clientName) {
		return nil, apperrors.ErrForbidden
	}

	return o, nil
}
