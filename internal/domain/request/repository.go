package request

import (
	"context"
)

// Sort 请求列表排序键
type Sort string

const (
	SortID     Sort = "ID"
	SortBookID Sort = "BOOK_ID"
	SortAmount Sort = "AMOUNT"
	SortStatus Sort = "STATUS"
)

// ParseSort 解析排序参数，空串回退到ID
func ParseSort(s string) (Sort, bool) {
	switch Sort(s) {
	case "":
		return SortID, true
	case SortID, SortBookID, SortAmount, SortStatus:
		return Sort(s), true
	default:
		return "", false
	}
}

// Repository 补货请求仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建请求
	Create(ctx context.Context, req *Request) error

	// FindByID 根据ID查找请求
	FindByID(ctx context.Context, id uint) (*Request, error)

	// Update 更新请求(主要用于关闭)
	Update(ctx context.Context, req *Request) error

	// Save 按ID覆盖写入（导入路径的upsert）
	Save(ctx context.Context, req *Request) error

	// List 查询全部请求并按指定键排序
	List(ctx context.Context, sort Sort) ([]*Request, error)

	// ListOpen 查询全部OPEN请求，可按bookID过滤（bookID=0表示不过滤）
	// 对账流程(updateOrders)据此决定哪些请求可以关闭
	ListOpen(ctx context.Context, bookID uint) ([]*Request, error)
}
