package request

import (
	"time"
)

// Status 补货请求状态
type Status int

const (
	StatusOpen   Status = 1 // 待满足
	StatusClosed Status = 2 // 库存已足够，请求关闭
)

// String 实现Stringer接口
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus 从字符串解析状态（导入文件使用）
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "OPEN":
		return StatusOpen, true
	case "CLOSED":
		return StatusClosed, true
	default:
		return 0, false
	}
}

// Request 补货请求实体
// 设计说明：
// 1. 只引用BookID，不持有Book（引用而非所有权，同一本书可对应多个OPEN请求）
// 2. 关闭由对账流程(updateOrders)驱动：库存足以满足Amount时转CLOSED
type Request struct {
	ID        uint
	BookID    uint
	Amount    int // 请求补足到的数量，正数
	Status    Status
	CreatedAt time.Time
}

// NewRequest 创建新请求(工厂方法)，初始状态OPEN
func NewRequest(bookID uint, amount int) (*Request, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Request{
		BookID:    bookID,
		Amount:    amount,
		Status:    StatusOpen,
		CreatedAt: time.Now(),
	}, nil
}

// SatisfiedBy 当前库存是否足以满足请求
func (r *Request) SatisfiedBy(stock int) bool {
	return stock >= r.Amount
}

// Close 关闭请求
// 幂等：对已CLOSED的请求再次调用不产生变化
func (r *Request) Close() {
	r.Status = StatusClosed
}
