package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// GetBookUseCase 查询单本图书用例
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase 创建查询图书用例
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo}
}

// Execute 根据ID查询图书
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookRepo.FindByID(ctx, id)
}
