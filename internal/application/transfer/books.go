// Package transfer 实现实体与数据文件之间的导入导出用例。
// 导入是按ID的覆盖写入（upsert），导出写入固定数据文件。
package transfer

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application"
	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/infrastructure/transfer"
)

// BookTransferUseCase 图书导入导出用例
// 导入改变库存，随后内联执行补货请求对账
type BookTransferUseCase struct {
	bookRepo   book.Repository
	store      *transfer.Store
	reconciler *appRequest.Reconciler
	txManager  application.Transactor
}

// NewBookTransferUseCase 创建图书导入导出用例
func NewBookTransferUseCase(
	bookRepo book.Repository,
	store *transfer.Store,
	reconciler *appRequest.Reconciler,
	txManager application.Transactor,
) *BookTransferUseCase {
	return &BookTransferUseCase{
		bookRepo:   bookRepo,
		store:      store,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// ImportAll 导入文件中的全部图书
func (uc *BookTransferUseCase) ImportAll(ctx context.Context) ([]*book.Book, error) {
	books, err := uc.store.ReadBooks()
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		for _, b := range books {
			if err := uc.bookRepo.Save(txCtx, b); err != nil {
				return err
			}
		}
		// 导入后的库存可能满足遗留的补货请求
		_, err := uc.reconciler.ReconcileAll(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// ImportOne 按ID导入文件中的单本图书
func (uc *BookTransferUseCase) ImportOne(ctx context.Context, id uint) (*book.Book, error) {
	b, err := uc.store.ReadBook(id)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookRepo.Save(txCtx, b); err != nil {
			return err
		}
		_, err := uc.reconciler.ReconcileBook(txCtx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// ExportAll 导出全部图书到文件
func (uc *BookTransferUseCase) ExportAll(ctx context.Context) ([]*book.Book, error) {
	books, err := uc.bookRepo.List(ctx, book.SortID)
	if err != nil {
		return nil, err
	}
	if err := uc.store.WriteBooks(books); err != nil {
		return nil, err
	}
	return books, nil
}

// ExportOne 按ID导出单本图书到文件
func (uc *BookTransferUseCase) ExportOne(ctx context.Context, id uint) (*book.Book, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.store.WriteBook(b); err != nil {
		return nil, err
	}
	return b, nil
}
