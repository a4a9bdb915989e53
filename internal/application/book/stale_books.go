package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// StaleBooksUseCase 呆滞图书报表用例
// 呆滞定义：从未售出，或最后一次售出早于staleAfter之前
type StaleBooksUseCase struct {
	bookRepo   book.Repository
	staleAfter time.Duration
}

// NewStaleBooksUseCase 创建呆滞图书用例
func NewStaleBooksUseCase(bookRepo book.Repository, staleAfter time.Duration) *StaleBooksUseCase {
	return &StaleBooksUseCase{bookRepo: bookRepo, staleAfter: staleAfter}
}

// Execute 查询呆滞图书，sort为空时按ID排序
func (uc *StaleBooksUseCase) Execute(ctx context.Context, sortKey string) ([]*book.Book, error) {
	sort, ok := book.ParseSort(sortKey)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "不支持的排序键: %s", sortKey)
	}

	cutoff := time.Now().Add(-uc.staleAfter)
	return uc.bookRepo.ListStale(ctx, cutoff, sort)
}
