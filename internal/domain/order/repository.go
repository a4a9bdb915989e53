package order

import (
	"context"
	"time"
)

// Sort 订单列表排序键
type Sort string

const (
	SortID           Sort = "ID"
	SortPrice        Sort = "PRICE"
	SortStatus       Sort = "STATUS"
	SortOrderDate    Sort = "ORDER_DATE"
	SortCompleteDate Sort = "COMPLETE_DATE"
)

// ParseSort 解析排序参数，空串回退到ID
func ParseSort(s string) (Sort, bool) {
	switch Sort(s) {
	case "":
		return SortID, true
	case SortID, SortPrice, SortStatus, SortOrderDate, SortCompleteDate:
		return Sort(s), true
	default:
		return "", false
	}
}

// CompletedFilter 已完成订单的时间窗过滤
// begin/end任一可为nil，表示该侧无界；区间为闭区间[begin, end]
type CompletedFilter struct {
	Begin *time.Time
	End   *time.Time
}

// Repository 订单仓储接口(依赖倒置原则)
// 订单和明细必须在同一事务中读写（聚合整体持久化）
type Repository interface {
	// Create 创建订单(包含订单明细)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// Update 更新订单(主要用于状态变更)
	Update(ctx context.Context, order *Order) error

	// Save 按ID覆盖写入（导入路径的upsert）
	Save(ctx context.Context, order *Order) error

	// List 查询全部订单并按指定键排序
	List(ctx context.Context, sort Sort) ([]*Order, error)

	// ListCompleted 查询完成时间落在窗口内的已完成订单
	ListCompleted(ctx context.Context, filter CompletedFilter, sort Sort) ([]*Order, error)

	// CountCompleted 窗口内已完成订单数
	CountCompleted(ctx context.Context, filter CompletedFilter) (int64, error)

	// EarnedSum 窗口内已完成订单的金额合计(分)
	EarnedSum(ctx context.Context, filter CompletedFilter) (int64, error)
}
