package transfer

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/infrastructure/transfer"
)

// OrderTransferUseCase 订单导入导出用例
// 订单导入是数据恢复，不重放库存扣减
type OrderTransferUseCase struct {
	orderRepo order.Repository
	store     *transfer.Store
	txManager application.Transactor
}

// NewOrderTransferUseCase 创建订单导入导出用例
func NewOrderTransferUseCase(
	orderRepo order.Repository,
	store *transfer.Store,
	txManager application.Transactor,
) *OrderTransferUseCase {
	return &OrderTransferUseCase{
		orderRepo: orderRepo,
		store:     store,
		txManager: txManager,
	}
}

// ImportAll 导入文件中的全部订单
func (uc *OrderTransferUseCase) ImportAll(ctx context.Context) ([]*order.Order, error) {
	orders, err := uc.store.ReadOrders()
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		for _, o := range orders {
			if err := uc.orderRepo.Save(txCtx, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// ImportOne 按ID导入文件中的单个订单
func (uc *OrderTransferUseCase) ImportOne(ctx context.Context, id uint) (*order.Order, error) {
	o, err := uc.store.ReadOrder(id)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.orderRepo.Save(txCtx, o)
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

// ExportAll 导出全部订单到文件
func (uc *OrderTransferUseCase) ExportAll(ctx context.Context) ([]*order.Order, error) {
	orders, err := uc.orderRepo.List(ctx, order.SortID)
	if err != nil {
		return nil, err
	}
	if err := uc.store.WriteOrders(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ExportOne 按ID导出单个订单到文件
func (uc *OrderTransferUseCase) ExportOne(ctx context.Context, id uint) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.store.WriteOrder(o); err != nil {
		return nil, err
	}
	return o, nil
}
