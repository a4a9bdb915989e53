package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ListOrdersUseCase 订单列表用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 查询全部订单，sort为空时按ID排序
func (uc *ListOrdersUseCase) Execute(ctx context.Context, sortKey string) ([]*order.Order, error) {
	sort, ok := order.ParseSort(sortKey)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "不支持的排序键: %s", sortKey)
	}
	return uc.orderRepo.List(ctx, sort)
}
