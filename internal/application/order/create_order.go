package order

import (
	"context"
	"sort"
	"time"

	"github.com/xiebiao/bookshop/internal/application"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// CreateOrderUseCase 创建订单用例
// 设计说明：
// 1. 下单只登记需求，不占用库存；库存在订单完成时校验并扣减
// 2. 单价取下单时刻的数据库价格快照，防止改价提交
// 3. 缺货图书也允许下单，等到货后再完成
type CreateOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager application.Transactor
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager application.Transactor,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// CreateOrderInput 下单入参
type CreateOrderInput struct {
	ClientName string       // 买家用户名（从JWT中提取）
	Books      map[uint]int // 图书ID → 数量
}

// Execute 执行下单
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*order.Order, error) {
	if len(input.Books) == 0 {
		return nil, order.ErrEmptyItems
	}

	// map遍历无序，按图书ID排序保证明细顺序稳定
	bookIDs := make([]uint, 0, len(input.Books))
	for id := range input.Books {
		bookIDs = append(bookIDs, id)
	}
	sort.Slice(bookIDs, func(i, j int) bool { return bookIDs[i] < bookIDs[j] })

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 校验图书存在并快照当前价格
		items := make([]order.Item, 0, len(bookIDs))
		for _, bookID := range bookIDs {
			quantity := input.Books[bookID]
			if quantity <= 0 {
				return order.ErrInvalidQuantity
			}

			b, err := uc.bookRepo.FindByID(txCtx, bookID)
			if err != nil {
				return err
			}
			items = append(items, order.Item{
				BookID:   b.ID,
				Quantity: quantity,
				Price:    b.Price,
			})
		}

		// 2. 创建订单（NEW状态，不扣库存）
		o, err := order.NewOrder(input.ClientName, items, time.Now())
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	return result, nil
}
