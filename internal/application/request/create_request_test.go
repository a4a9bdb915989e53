package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/request"
)

func TestCreateRequestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("库存不足时请求保持OPEN", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "Go语言实战", 5, 5900)

		uc := NewCreateRequestUseCase(bookRepo, requestRepo, fakeTx{})
		req, err := uc.Execute(ctx, b.ID, 20)
		require.NoError(t, err)

		assert.Equal(t, request.StatusOpen, req.Status)
		assert.Equal(t, b.ID, req.BookID)
		assert.Equal(t, 20, req.Amount)

		saved, err := requestRepo.FindByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusOpen, saved.Status)
	})

	t.Run("库存已满足时请求创建即关闭", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "Go语言实战", 50, 5900)

		uc := NewCreateRequestUseCase(bookRepo, requestRepo, fakeTx{})
		req, err := uc.Execute(ctx, b.ID, 20)
		require.NoError(t, err)

		// 留下一条已关闭的登记记录
		assert.Equal(t, request.StatusClosed, req.Status)
		saved, err := requestRepo.FindByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, request.StatusClosed, saved.Status)
	})

	t.Run("图书不存在", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()

		uc := NewCreateRequestUseCase(bookRepo, requestRepo, fakeTx{})
		_, err := uc.Execute(ctx, 999, 10)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("请求数量非正数被拒绝", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "Go语言实战", 5, 5900)

		uc := NewCreateRequestUseCase(bookRepo, requestRepo, fakeTx{})
		_, err := uc.Execute(ctx, b.ID, 0)
		assert.ErrorIs(t, err, request.ErrInvalidAmount)

		// 非法请求不留记录
		all, err := requestRepo.List(ctx, request.SortID)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
