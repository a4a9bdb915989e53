package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 订单与明细作为聚合整体读写：Create/Save携带Items，查询Preload Items
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(包含订单明细)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	model.ID = 0

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID（订单和明细）
	o.ID = model.ID
	for i := range model.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// FindByID 根据ID查找订单(包含订单明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := dbFromContext(ctx, r.db).
		Preload("Items").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// Update 更新订单（状态、完成时间）
// 明细在创建后不可变，这里只更新订单行本身
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	result := dbFromContext(ctx, r.db).Model(&OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"status":       int(o.Status),
			"total":        o.Total,
			"client_name":  o.ClientName,
			"completed_at": o.CompletedAt,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Save 按ID覆盖写入（导入路径的upsert）
// 先删旧明细再整体写入，保证导入后的明细与文件一致
func (r *orderRepository) Save(ctx context.Context, o *order.Order) error {
	db := dbFromContext(ctx, r.db)

	if o.ID != 0 {
		if err := db.Where("order_id = ?", o.ID).Delete(&OrderItemModel{}).Error; err != nil {
			return apperrors.Wrap(err, "清理订单明细失败")
		}
	}

	model := toOrderModel(o)
	if err := db.Save(model).Error; err != nil {
		return apperrors.Wrap(err, "保存订单失败")
	}
	o.ID = model.ID
	return nil
}

// List 查询全部订单并排序
func (r *orderRepository) List(ctx context.Context, sort order.Sort) ([]*order.Order, error) {
	var models []OrderModel
	err := dbFromContext(ctx, r.db).
		Preload("Items").
		Order(orderOrderClause(sort)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	return toOrderEntities(models), nil
}

// ListCompleted 查询完成时间落在[begin, end]内的已完成订单
func (r *orderRepository) ListCompleted(ctx context.Context, filter order.CompletedFilter, sort order.Sort) ([]*order.Order, error) {
	var models []OrderModel
	err := completedQuery(dbFromContext(ctx, r.db), filter).
		Preload("Items").
		Order(orderOrderClause(sort)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询已完成订单失败")
	}

	return toOrderEntities(models), nil
}

// CountCompleted 窗口内已完成订单数
func (r *orderRepository) CountCompleted(ctx context.Context, filter order.CompletedFilter) (int64, error) {
	var count int64
	err := completedQuery(dbFromContext(ctx, r.db), filter).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计已完成订单失败")
	}
	return count, nil
}

// EarnedSum 窗口内已完成订单的金额合计(分)
func (r *orderRepository) EarnedSum(ctx context.Context, filter order.CompletedFilter) (int64, error) {
	var sum *int64
	err := completedQuery(dbFromContext(ctx, r.db), filter).
		Select("SUM(total)").
		Scan(&sum).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计营收失败")
	}
	if sum == nil {
		// 窗口内没有订单时SUM返回NULL
		return 0, nil
	}
	return *sum, nil
}

// completedQuery 已完成订单的公共过滤条件
// begin/end任一为nil表示该侧无界，闭区间
func completedQuery(db *gorm.DB, filter order.CompletedFilter) *gorm.DB {
	query := db.Model(&OrderModel{}).Where("status = ?", int(order.StatusCompleted))
	if filter.Begin != nil {
		query = query.Where("completed_at >= ?", *filter.Begin)
	}
	if filter.End != nil {
		query = query.Where("completed_at <= ?", *filter.End)
	}
	return query
}

// orderOrderClause 排序键 → ORDER BY子句
func orderOrderClause(sort order.Sort) string {
	switch sort {
	case order.SortPrice:
		return "total ASC"
	case order.SortStatus:
		return "status ASC"
	case order.SortOrderDate:
		return "ordered_at ASC"
	case order.SortCompleteDate:
		return "completed_at ASC"
	default:
		return "id ASC"
	}
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.Item{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &order.Order{
		ID:          model.ID,
		Status:      order.Status(model.Status),
		Total:       model.Total,
		ClientName:  model.ClientName,
		Items:       items,
		OrderedAt:   model.OrderedAt,
		CompletedAt: model.CompletedAt,
	}
}

func toOrderEntities(models []OrderModel) []*order.Order {
	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders
}

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:       item.ID,
			OrderID:  o.ID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &OrderModel{
		ID:          o.ID,
		Status:      int(o.Status),
		Total:       o.Total,
		ClientName:  o.ClientName,
		Items:       items,
		OrderedAt:   o.OrderedAt,
		CompletedAt: o.CompletedAt,
	}
}
