package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/request"
)

// placeOrder 在fake仓储上准备一个NEW订单
func placeOrder(t *testing.T, orderRepo *fakeOrderRepo, bookRepo *fakeBookRepo, books map[uint]int) *order.Order {
	t.Helper()
	uc := NewCreateOrderUseCase(orderRepo, bookRepo, fakeTx{})
	o, err := uc.Execute(context.Background(), CreateOrderInput{ClientName: "alice", Books: books})
	require.NoError(t, err)
	return o
}

func newSetOrderStatusUseCase(orderRepo *fakeOrderRepo, bookRepo *fakeBookRepo, requestRepo *fakeRequestRepo) *SetOrderStatusUseCase {
	reconciler := appRequest.NewReconciler(bookRepo, requestRepo)
	return NewSetOrderStatusUseCase(orderRepo, bookRepo, reconciler, fakeTx{})
}

func TestSetOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("完成订单扣减库存并盖章售出时间", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 3})

		uc := newSetOrderStatusUseCase(orderRepo, bookRepo, newFakeRequestRepo())
		result, err := uc.Execute(ctx, o.ID, "COMPLETED")
		require.NoError(t, err)

		assert.Equal(t, order.StatusCompleted, result.Status)
		assert.NotNil(t, result.CompletedAt)

		stored, _ := bookRepo.FindByID(ctx, b.ID)
		assert.Equal(t, 7, stored.Amount)
		assert.NotNil(t, stored.LastSaleAt, "完成订单走销售路径")
	})

	t.Run("完成订单后对账关闭仍可满足的请求", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		requestRepo := newFakeRequestRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 2})

		// 遗留的OPEN请求，扣减后库存8仍能满足
		req, err := request.NewRequest(b.ID, 5)
		require.NoError(t, err)
		require.NoError(t, requestRepo.Create(ctx, req))

		uc := newSetOrderStatusUseCase(orderRepo, bookRepo, requestRepo)
		_, err = uc.Execute(ctx, o.ID, "COMPLETED")
		require.NoError(t, err)

		stored, _ := requestRepo.FindByID(ctx, req.ID)
		assert.Equal(t, request.StatusClosed, stored.Status)
	})

	t.Run("库存不足时完成失败订单保持NEW", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《缺货图书》", 1, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 3})

		uc := newSetOrderStatusUseCase(orderRepo, bookRepo, newFakeRequestRepo())
		_, err := uc.Execute(ctx, o.ID, "COMPLETED")
		assert.ErrorIs(t, err, book.ErrInsufficientStock)

		stored, _ := orderRepo.FindByID(ctx, o.ID)
		assert.Equal(t, order.StatusNew, stored.Status, "订单未被写入终态")
	})

	t.Run("取消订单", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 3})

		uc := newSetOrderStatusUseCase(orderRepo, bookRepo, newFakeRequestRepo())
		result, err := uc.Execute(ctx, o.ID, "CANCELED")
		require.NoError(t, err)
		assert.Equal(t, order.StatusCanceled, result.Status)

		stored, _ := bookRepo.FindByID(ctx, b.ID)
		assert.Equal(t, 10, stored.Amount, "取消不影响库存")
	})

	t.Run("终态订单不可再流转", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		orderRepo := newFakeOrderRepo()
		b := mustBook(t, bookRepo, "《测试图书》", 10, 100)
		o := placeOrder(t, orderRepo, bookRepo, map[uint]int{b.ID: 1})

		uc := newSetOrderStatusUseCase(orderRepo, bookRepo, newFakeRequestRepo())
		_, err := uc.Execute(ctx, o.ID, "CANCELED")
		require.NoError(t, err)

		_, err = uc.Execute(ctx, o.ID, "COMPLETED")
		assert.ErrorIs(t, err, order.ErrTerminalStatus)

		stored, _ := bookRepo.FindByID(ctx, b.ID)
		assert.Equal(t, 10, stored.Amount, "已取消订单不扣库存")
	})

	t.Run("未知状态被拒绝", func(t *testing.T) {
		uc := newSetOrderStatusUseCase(newFakeOrderRepo(), newFakeBookRepo(), newFakeRequestRepo())
		_, err := uc.Execute(ctx, 1, "SHIPPED")
		assert.ErrorIs(t, err, order.ErrUnknownStatus)
	})

	t.Run("不允许流转回NEW", func(t *testing.T) {
		uc := newSetOrderStatusUseCase(newFakeOrderRepo(), newFakeBookRepo(), newFakeRequestRepo())
		_, err := uc.Execute(ctx, 1, "NEW")
		require.Error(t, err)
	})
}
