package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CancelOrderUseCase 取消订单用例
// 普通用户只能取消自己的订单，管理员可取消任意订单
type CancelOrderUseCase struct {
	orderRepo order.Repository
	txManager application.Transactor
}

// NewCancelOrderUseCase 创建取消订单用例
func NewCancelOrderUseCase(orderRepo order.Repository, txManager application.Transactor) *CancelOrderUseCase {
	return &CancelOrderUseCase{orderRepo: orderRepo, txManager: txManager}
}

// Execute 取消订单
// NEW状态的订单未占用库存，取消无需归还库存
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID uint, clientName string, isAdmin bool) (*order.Order, error) {
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}

		if !isAdmin && !o.IsOwnedBy(clientName) {
			return apperrors.ErrForbidden
		}

		if err := o.Cancel(); err != nil {
			return err
		}
		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
