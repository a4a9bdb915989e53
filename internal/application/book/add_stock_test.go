package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/request"
)

func newAddStockUseCase(bookRepo *fakeBookRepo, requestRepo *fakeRequestRepo) *AddStockUseCase {
	reconciler := appRequest.NewReconciler(bookRepo, requestRepo)
	return NewAddStockUseCase(bookRepo, reconciler, fakeTx{})
}

func TestAddStock(t *testing.T) {
	ctx := context.Background()

	t.Run("到货增加库存并记录到货时间", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 0, 1000)
		require.Equal(t, book.StatusNotAvailable, b.Status)

		result, err := newAddStockUseCase(bookRepo, requestRepo).Execute(ctx, b.ID, 5)
		require.NoError(t, err)

		assert.Equal(t, 5, result.Amount)
		assert.Equal(t, book.StatusAvailable, result.Status)
		assert.NotNil(t, result.LastDeliveredAt)

		stored, err := bookRepo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Amount)
	})

	t.Run("到货数量非正数被拒绝", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 3, 1000)

		_, err := newAddStockUseCase(bookRepo, requestRepo).Execute(ctx, b.ID, 0)
		assert.ErrorIs(t, err, book.ErrInvalidAmount)

		stored, _ := bookRepo.FindByID(ctx, b.ID)
		assert.Equal(t, 3, stored.Amount, "失败时库存不变")
	})

	t.Run("图书不存在", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()

		_, err := newAddStockUseCase(bookRepo, requestRepo).Execute(ctx, 42, 5)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("到货后关闭已满足的补货请求", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 0, 1000)

		small, err := request.NewRequest(b.ID, 3)
		require.NoError(t, err)
		require.NoError(t, requestRepo.Create(ctx, small))
		big, err := request.NewRequest(b.ID, 100)
		require.NoError(t, err)
		require.NoError(t, requestRepo.Create(ctx, big))

		_, err = newAddStockUseCase(bookRepo, requestRepo).Execute(ctx, b.ID, 10)
		require.NoError(t, err)

		smallStored, _ := requestRepo.FindByID(ctx, small.ID)
		assert.Equal(t, request.StatusClosed, smallStored.Status, "库存10可满足请求3")

		bigStored, _ := requestRepo.FindByID(ctx, big.ID)
		assert.Equal(t, request.StatusOpen, bigStored.Status, "库存10不能满足请求100")
	})
}
