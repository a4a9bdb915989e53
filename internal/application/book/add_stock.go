package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/application"
	"github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// AddStockUseCase 图书到货用例
// 设计说明：
// 1. 悲观锁锁定图书行，防止与订单完成并发竞争库存
// 2. 到货后内联执行补货请求对账，满足的请求立即关闭
// 3. 整个流程在一个事务中，对账失败则到货回滚
type AddStockUseCase struct {
	bookRepo   book.Repository
	reconciler *request.Reconciler
	txManager  application.Transactor
}

// NewAddStockUseCase 创建到货用例
func NewAddStockUseCase(
	bookRepo book.Repository,
	reconciler *request.Reconciler,
	txManager application.Transactor,
) *AddStockUseCase {
	return &AddStockUseCase{
		bookRepo:   bookRepo,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// Execute 为指定图书增加库存
func (uc *AddStockUseCase) Execute(ctx context.Context, bookID uint, amount int) (*book.Book, error) {
	var result *book.Book
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定图书行
		b, err := uc.bookRepo.LockByID(txCtx, bookID)
		if err != nil {
			return err
		}

		// 2. 增加库存并记录到货时间
		if err := b.AddStock(amount, time.Now()); err != nil {
			return err
		}
		if err := uc.bookRepo.Update(txCtx, b); err != nil {
			return err
		}

		// 3. 到货对账：关闭本书已被满足的补货请求
		if _, err := uc.reconciler.ReconcileBook(txCtx, b); err != nil {
			return err
		}

		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.StockAdjustmentsTotal.WithLabelValues("add").Inc()
	return result, nil
}
