package book

import (
	"context"
	"time"
)

// Sort 图书列表排序键
type Sort string

const (
	SortID              Sort = "ID"
	SortName            Sort = "NAME"
	SortAuthor          Sort = "AUTHOR"
	SortPrice           Sort = "PRICE"
	SortPublicationDate Sort = "PUBLICATION_DATE"
	SortAmount          Sort = "AMOUNT"
	SortLastSaleDate    Sort = "LAST_SALE_DATE"
)

// ParseSort 解析排序参数，空串回退到ID
func ParseSort(s string) (Sort, bool) {
	switch Sort(s) {
	case "":
		return SortID, true
	case SortID, SortName, SortAuthor, SortPrice, SortPublicationDate, SortAmount, SortLastSaleDate:
		return Sort(s), true
	default:
		return "", false
	}
}

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
// 3. 所有方法参与context携带的事务（见mysql.TxManager）
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
	// 用于库存调整与订单完成，防止并发超卖
	LockByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Save 按ID覆盖写入（导入路径的upsert：ID存在则更新，否则创建）
	Save(ctx context.Context, book *Book) error

	// List 查询全部图书并按指定键排序
	List(ctx context.Context, sort Sort) ([]*Book, error)

	// ListStale 查询呆滞图书：LastSaleAt早于cutoff或从未售出
	ListStale(ctx context.Context, cutoff time.Time, sort Sort) ([]*Book, error)
}
