package book

import (
	"time"
)

// BookStatus 图书状态
// 设计说明：
// 1. 使用int类型存储（节省空间，便于索引），对外序列化为字符串
// 2. 状态是库存数量的派生值：Amount > 0 ⇔ AVAILABLE，由实体方法维护
type BookStatus int

const (
	StatusAvailable    BookStatus = 1 // 有库存
	StatusNotAvailable BookStatus = 2 // 无库存
)

// String 实现Stringer接口（DTO与导出文件使用该表示）
func (s BookStatus) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusNotAvailable:
		return "NOT_AVAILABLE"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus 从字符串解析状态（导入文件使用）
func ParseStatus(s string) (BookStatus, bool) {
	switch s {
	case "AVAILABLE":
		return StatusAvailable, true
	case "NOT_AVAILABLE":
		return StatusNotAvailable, true
	default:
		return 0, false
	}
}

// Book 图书实体(聚合根)
// 设计说明：
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 图书不做物理删除：下架通过Status表达（软生命周期）
// 3. LastSaleAt只在销售路径上盖章，呆滞检测（getStale）只看销售时间
type Book struct {
	ID              uint
	Name            string     // 书名
	Author          string     // 作者
	PublicationDate int        // 出版年份
	Amount          int        // 库存数量，非负
	Price           int64      // 价格(单位:分)
	LastDeliveredAt *time.Time // 最近一次到货时间
	LastSaleAt      *time.Time // 最近一次售出时间（nil表示从未售出）
	Status          BookStatus // 派生自Amount
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(name, author string, publicationDate int, amount int, price int64) (*Book, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	b := &Book{
		Name:            name,
		Author:          author,
		PublicationDate: publicationDate,
		Amount:          amount,
		Price:           price,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	b.refreshStatus()
	return b, nil
}

// AddStock 入库(领域行为)
// 业务规则：
// 1. amount必须>0
// 2. 盖章LastDeliveredAt
// 3. 库存从0转正时状态变为AVAILABLE
func (b *Book) AddStock(amount int, at time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	b.Amount += amount
	b.LastDeliveredAt = &at
	b.refreshStatus()
	b.UpdatedAt = time.Now()
	return nil
}

// WriteOff 库存核销(领域行为)
// 说明：纯库存修正，不盖章LastSaleAt；销售路径使用Sell
// 业务规则：扣减后库存不能为负数，不足时返回ErrInsufficientStock且库存不变
func (b *Book) WriteOff(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if b.Amount < amount {
		return ErrInsufficientStock
	}
	b.Amount -= amount
	b.refreshStatus()
	b.UpdatedAt = time.Now()
	return nil
}

// Sell 售出扣减(领域行为)
// 与WriteOff共享同一套校验，但额外盖章LastSaleAt（喂给呆滞图书检测）
func (b *Book) Sell(amount int, at time.Time) error {
	if err := b.WriteOff(amount); err != nil {
		return err
	}
	b.LastSaleAt = &at
	return nil
}

// IsStale 是否为呆滞图书
// 定义：最近售出时间早于cutoff，或从未售出
func (b *Book) IsStale(cutoff time.Time) bool {
	return b.LastSaleAt == nil || b.LastSaleAt.Before(cutoff)
}

// refreshStatus 根据库存数量重算状态
// 不变式：Status == AVAILABLE ⇔ Amount > 0
func (b *Book) refreshStatus() {
	if b.Amount > 0 {
		b.Status = StatusAvailable
	} else {
		b.Status = StatusNotAvailable
	}
}
