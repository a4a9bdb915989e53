package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ListBooksUseCase 图书列表用例
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// Execute 查询全部图书，sort为空时按ID排序
func (uc *ListBooksUseCase) Execute(ctx context.Context, sortKey string) ([]*book.Book, error) {
	sort, ok := book.ParseSort(sortKey)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "不支持的排序键: %s", sortKey)
	}
	return uc.bookRepo.List(ctx, sort)
}
