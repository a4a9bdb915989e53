package request

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/request"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// Reconciler 补货请求对账
// 设计说明：
// 1. 每次库存变动（到货、导入）后内联执行，不走异步队列
// 2. 当前库存能覆盖请求数量时关闭该请求
// 3. 方法在调用方事务上下文中执行，不自行开启事务
type Reconciler struct {
	bookRepo    book.Repository
	requestRepo request.Repository
}

// NewReconciler 创建补货请求对账器
func NewReconciler(bookRepo book.Repository, requestRepo request.Repository) *Reconciler {
	return &Reconciler{
		bookRepo:    bookRepo,
		requestRepo: requestRepo,
	}
}

// ReconcileBook 对单本图书的未关闭请求做一次对账
// 返回本次关闭的请求数
func (r *Reconciler) ReconcileBook(ctx context.Context, b *book.Book) (int, error) {
	open, err := r.requestRepo.ListOpen(ctx, b.ID)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, req := range open {
		if !req.SatisfiedBy(b.Amount) {
			continue
		}
		req.Close()
		if err := r.requestRepo.Update(ctx, req); err != nil {
			return closed, err
		}
		closed++
	}

	if closed > 0 {
		metrics.RequestsClosedTotal.Add(float64(closed))
	}
	return closed, nil
}

// ReconcileAll 对全部图书做一次对账（批量导入后使用）
func (r *Reconciler) ReconcileAll(ctx context.Context) (int, error) {
	open, err := r.requestRepo.ListOpen(ctx, 0)
	if err != nil {
		return 0, err
	}

	// 同一本书可能有多条请求，按需查一次库存
	stocks := make(map[uint]int)
	closed := 0
	for _, req := range open {
		stock, ok := stocks[req.BookID]
		if !ok {
			b, err := r.bookRepo.FindByID(ctx, req.BookID)
			if errors.Is(err, book.ErrBookNotFound) {
				// 文件导入可能引用已不存在的图书，跳过其请求
				continue
			}
			if err != nil {
				return closed, err
			}
			stock = b.Amount
			stocks[req.BookID] = stock
		}

		if !req.SatisfiedBy(stock) {
			continue
		}
		req.Close()
		if err := r.requestRepo.Update(ctx, req); err != nil {
			return closed, err
		}
		closed++
	}

	if closed > 0 {
		metrics.RequestsClosedTotal.Add(float64(closed))
	}
	return closed, nil
}
