package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/application"
	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// SetOrderStatusUseCase 流转订单状态用例（管理员）
// 设计说明：
// 1. 完成订单是库存真正扣减的时刻
// 2. 悲观锁逐本锁定图书行，任何一本库存不足则整单回滚
// 3. 扣减走销售路径，更新最后售出时间供呆滞统计使用
// 4. 扣减后逐本对账，库存变动路径统一经过补货请求对账
type SetOrderStatusUseCase struct {
	orderRepo  order.Repository
	bookRepo   book.Repository
	reconciler *appRequest.Reconciler
	txManager  application.Transactor
}

// NewSetOrderStatusUseCase 创建状态流转用例
func NewSetOrderStatusUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	reconciler *appRequest.Reconciler,
	txManager application.Transactor,
) *SetOrderStatusUseCase {
	return &SetOrderStatusUseCase{
		orderRepo:  orderRepo,
		bookRepo:   bookRepo,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// Execute 将订单流转到目标状态
// 目标只允许COMPLETED或CANCELED；终态订单不可再流转
func (uc *SetOrderStatusUseCase) Execute(ctx context.Context, orderID uint, statusKey string) (*order.Order, error) {
	target, ok := order.ParseStatus(statusKey)
	if !ok {
		return nil, order.ErrUnknownStatus
	}
	if target == order.StatusNew {
		return nil, apperrors.New(apperrors.KindInvalidArgument, "订单不能流转回NEW状态")
	}

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}

		switch target {
		case order.StatusCompleted:
			if err := uc.complete(txCtx, o); err != nil {
				return err
			}
		case order.StatusCanceled:
			if err := o.Cancel(); err != nil {
				return err
			}
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

	if target == order.StatusCompleted {
		metrics.OrdersCompletedTotal.Inc()
	}
	return result, nil
}

// complete 完成订单：锁定并扣减每本图书的库存
func (uc *SetOrderStatusUseCase) complete(ctx context.Context, o *order.Order) error {
	// 终态先行校验，避免对已取消/已完成订单扣减库存
	if o.Status.IsTerminal() {
		return order.ErrTerminalStatus
	}

	now := time.Now()

	for bookID, amount := range o.BookAmounts() {
		b, err := uc.bookRepo.LockByID(ctx, bookID)
		if err != nil {
			return err
		}
		if err := b.Sell(amount, now); err != nil {
			return err
		}
		if err := uc.bookRepo.Update(ctx, b); err != nil {
			return err
		}
		if _, err := uc.reconciler.ReconcileBook(ctx, b); err != nil {
			return err
		}
	}

	return o.Complete(now)
}
