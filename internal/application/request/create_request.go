package request

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/request"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// CreateRequestUseCase 登记补货请求用例
// 设计说明：当前库存已能满足数量时，请求创建即关闭，
// 留下一条已关闭记录作为登记痕迹
type CreateRequestUseCase struct {
	bookRepo    book.Repository
	requestRepo request.Repository
	txManager   application.Transactor
}

// NewCreateRequestUseCase 创建补货请求用例
func NewCreateRequestUseCase(
	bookRepo book.Repository,
	requestRepo request.Repository,
	txManager application.Transactor,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		bookRepo:    bookRepo,
		requestRepo: requestRepo,
		txManager:   txManager,
	}
}

// Execute 为指定图书登记补货请求
func (uc *CreateRequestUseCase) Execute(ctx context.Context, bookID uint, amount int) (*request.Request, error) {
	var result *request.Request
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookRepo.FindByID(txCtx, bookID)
		if err != nil {
			return err
		}

		req, err := request.NewRequest(b.ID, amount)
		if err != nil {
			return err
		}

		closed := false
		if req.SatisfiedBy(b.Amount) {
			req.Close()
			closed = true
		}

		if err := uc.requestRepo.Create(txCtx, req); err != nil {
			return err
		}
		if closed {
			metrics.RequestsClosedTotal.Inc()
		}

		result = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
