package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("本人可以取消自己的订单", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 1})

		uc := NewCancelOrderUseCase(orderRepo, fakeTx{})
		result, err := uc.Execute(ctx, o.ID, "alice", false)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCanceled, result.Status)
	})

	t.Run("普通用户不能取消他人订单", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 1})

		uc := NewCancelOrderUseCase(orderRepo, fakeTx{})
		_, err := uc.Execute(ctx, o.ID, "bob", false)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

		stored, _ := orderRepo.FindByID(ctx, o.ID)
		assert.Equal(t, order.StatusNew, stored.Status)
	})

	t.Run("管理员可以取消任意订单", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 1})

		uc := NewCancelOrderUseCase(orderRepo, fakeTx{})
		result, err := uc.Execute(ctx, o.ID, "admin", true)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCanceled, result.Status)
	})

	t.Run("重复取消返回冲突", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 1})

		uc := NewCancelOrderUseCase(orderRepo, fakeTx{})
		_, err := uc.Execute(ctx, o.ID, "alice", false)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, o.ID, "alice", false)
		assert.ErrorIs(t, err, order.ErrTerminalStatus)
	})

	t.Run("订单不存在", func(t *testing.T) {
		uc := NewCancelOrderUseCase(newFakeOrderRepo(), fakeTx{})
		_, err := uc.Execute(ctx, 42, "alice", false)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}
