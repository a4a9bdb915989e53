package transfer

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application"
	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/request"
	"github.com/xiebiao/bookshop/internal/infrastructure/transfer"
)

// RequestTransferUseCase 补货请求导入导出用例
// 导入可能带入可被当前库存满足的未关闭请求，导入后内联对账
type RequestTransferUseCase struct {
	requestRepo request.Repository
	store       *transfer.Store
	reconciler  *appRequest.Reconciler
	txManager   application.Transactor
}

// NewRequestTransferUseCase 创建补货请求导入导出用例
func NewRequestTransferUseCase(
	requestRepo request.Repository,
	store *transfer.Store,
	reconciler *appRequest.Reconciler,
	txManager application.Transactor,
) *RequestTransferUseCase {
	return &RequestTransferUseCase{
		requestRepo: requestRepo,
		store:       store,
		reconciler:  reconciler,
		txManager:   txManager,
	}
}

// ImportAll 导入文件中的全部补货请求
func (uc *RequestTransferUseCase) ImportAll(ctx context.Context) ([]*request.Request, error) {
	requests, err := uc.store.ReadRequests()
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		for _, req := range requests {
			if err := uc.requestRepo.Save(txCtx, req); err != nil {
				return err
			}
		}
		_, err := uc.reconciler.ReconcileAll(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return requests, nil
}

// ImportOne 按ID导入文件中的单条补货请求
func (uc *RequestTransferUseCase) ImportOne(ctx context.Context, id uint) (*request.Request, error) {
	req, err := uc.store.ReadRequest(id)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.requestRepo.Save(txCtx, req); err != nil {
			return err
		}
		_, err := uc.reconciler.ReconcileAll(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return req, nil
}

// ExportAll 导出全部补货请求到文件
func (uc *RequestTransferUseCase) ExportAll(ctx context.Context) ([]*request.Request, error) {
	requests, err := uc.requestRepo.List(ctx, request.SortID)
	if err != nil {
		return nil, err
	}
	if err := uc.store.WriteRequests(requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ExportOne 按ID导出单条补货请求到文件
func (uc *RequestTransferUseCase) ExportOne(ctx context.Context, id uint) (*request.Request, error) {
	req, err := uc.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.store.WriteRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}
