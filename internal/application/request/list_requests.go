package request

import (
	"context"
	"sort"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/request"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// BookRequests 按图书汇总的未关闭补货请求
type BookRequests struct {
	Book        *book.Book
	TotalAmount int
	Requests    []*request.Request
}

// GroupedRequestsUseCase 补货请求汇总用例
// 只统计未关闭的请求，按图书分组
type GroupedRequestsUseCase struct {
	bookRepo    book.Repository
	requestRepo request.Repository
}

// NewGroupedRequestsUseCase 创建补货请求汇总用例
func NewGroupedRequestsUseCase(bookRepo book.Repository, requestRepo request.Repository) *GroupedRequestsUseCase {
	return &GroupedRequestsUseCase{bookRepo: bookRepo, requestRepo: requestRepo}
}

// Execute 查询全部未关闭请求并按图书分组，结果按图书ID排序
func (uc *GroupedRequestsUseCase) Execute(ctx context.Context) ([]BookRequests, error) {
	open, err := uc.requestRepo.ListOpen(ctx, 0)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]*request.Request)
	for _, req := range open {
		grouped[req.BookID] = append(grouped[req.BookID], req)
	}

	bookIDs := make([]uint, 0, len(grouped))
	for id := range grouped {
		bookIDs = append(bookIDs, id)
	}
	sort.Slice(bookIDs, func(i, j int) bool { return bookIDs[i] < bookIDs[j] })

	result := make([]BookRequests, 0, len(bookIDs))
	for _, id := range bookIDs {
		b, err := uc.bookRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		total := 0
		for _, req := range grouped[id] {
			total += req.Amount
		}
		result = append(result, BookRequests{
			Book:        b,
			TotalAmount: total,
			Requests:    grouped[id],
		})
	}

	return result, nil
}

// ListRequestsUseCase 补货请求全量列表用例
type ListRequestsUseCase struct {
	requestRepo request.Repository
}

// NewListRequestsUseCase 创建补货请求列表用例
func NewListRequestsUseCase(requestRepo request.Repository) *ListRequestsUseCase {
	return &ListRequestsUseCase{requestRepo: requestRepo}
}

// Execute 查询全部请求（含已关闭），sort为空时按ID排序
func (uc *ListRequestsUseCase) Execute(ctx context.Context, sortKey string) ([]*request.Request, error) {
	s, ok := request.ParseSort(sortKey)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "不支持的排序键: %s", sortKey)
	}
	return uc.requestRepo.List(ctx, s)
}
