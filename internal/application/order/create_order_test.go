package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("下单快照当前价格并计算总额", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b1 := mustBook(t, bookRepo, "《图书一》", 10, 100)
		b2 := mustBook(t, bookRepo, "《图书二》", 10, 50)

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, fakeTx{})
		o, err := uc.Execute(ctx, CreateOrderInput{
			ClientName: "alice",
			Books:      map[uint]int{b1.ID: 2, b2.ID: 1},
		})
		require.NoError(t, err)

		assert.Equal(t, order.StatusNew, o.Status)
		assert.Equal(t, int64(250), o.Total, "100*2 + 50*1")
		assert.Equal(t, "alice", o.ClientName)
		assert.Len(t, o.Items, 2)
	})

	t.Run("下单不占用库存", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 5, 100)

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, fakeTx{})
		_, err := uc.Execute(ctx, CreateOrderInput{
			ClientName: "alice",
			Books:      map[uint]int{b.ID: 3},
		})
		require.NoError(t, err)

		stored, _ := bookRepo.FindByID(ctx, b.ID)
		assert.Equal(t, 5, stored.Amount, "库存在订单完成时才扣减")
	})

	t.Run("允许超过当前库存的数量下单", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《缺货图书》", 0, 100)

		uc := NewCreateOrderUseCase(orderRepo, bookRepo, fakeTx{})
		o, err := uc.Execute(ctx, CreateOrderInput{
			ClientName: "alice",
			Books:      map[uint]int{b.ID: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, order.StatusNew, o.Status)
	})

	t.Run("空订单被拒绝", func(t *testing.T) {
		uc := NewCreateOrderUseCase(newFakeOrderRepo(), newFakeBookRepo(), fakeTx{})
		_, err := uc.Execute(ctx, CreateOrderInput{ClientName: "alice", Books: nil})
		assert.ErrorIs(t, err, order.ErrEmptyItems)
	})

	t.Run("数量非正数被拒绝", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 5, 100)

		uc := NewCreateOrderUseCase(newFakeOrderRepo(), bookRepo, fakeTx{})
		_, err := uc.Execute(ctx, CreateOrderInput{
			ClientName: "alice",
			Books:      map[uint]int{b.ID: 0},
		})
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("引用不存在的图书被拒绝", func(t *testing.T) {
		uc := NewCreateOrderUseCase(newFakeOrderRepo(), newFakeBookRepo(), fakeTx{})
		_, err := uc.Execute(ctx, CreateOrderInput{
			ClientName: "alice",
			Books:      map[uint]int{42: 1},
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}
