package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application"
	"github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// WriteOffUseCase 图书核销用例（盘亏、破损等非销售出库）
// 核销不更新最后售出时间，呆滞统计只看真实销售
type WriteOffUseCase struct {
	bookRepo   book.Repository
	reconciler *request.Reconciler
	txManager  application.Transactor
}

// NewWriteOffUseCase 创建核销用例
func NewWriteOffUseCase(
	bookRepo book.Repository,
	reconciler *request.Reconciler,
	txManager application.Transactor,
) *WriteOffUseCase {
	return &WriteOffUseCase{
		bookRepo:   bookRepo,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// Execute 核销指定数量的库存，库存不足时整体失败
func (uc *WriteOffUseCase) Execute(ctx context.Context, bookID uint, amount int) (*book.Book, error) {
	var result *book.Book
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookRepo.LockByID(txCtx, bookID)
		if err != nil {
			return err
		}

		if err := b.WriteOff(amount); err != nil {
			return err
		}
		if err := uc.bookRepo.Update(txCtx, b); err != nil {
			return err
		}

		// 库存变动后统一对账，与到货路径保持一致
		if _, err := uc.reconciler.ReconcileBook(txCtx, b); err != nil {
			return err
		}

		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.StockAdjustmentsTotal.WithLabelValues("write_off").Inc()
	return result, nil
}
