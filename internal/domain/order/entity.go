package order

import (
	"time"
)

// Status 订单状态
// 设计说明：
// 1. 使用int类型存储（节省空间，便于索引），对外序列化为字符串
// 2. COMPLETED与CANCELED是终态：终态订单的状态、明细、金额均不可再变
type Status int

const (
	StatusNew       Status = 1 // 新建
	StatusCompleted Status = 2 // 已完成（终态）
	StatusCanceled  Status = 3 // 已取消（终态）
)

// String 实现Stringer接口
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "NEW"
	case StatusCompleted:
		return "COMPLETED"
	case StatusCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus 从字符串解析状态（setOrderStatus入参与导入文件使用）
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "NEW":
		return StatusNew, true
	case "COMPLETED":
		return StatusCompleted, true
	case "CANCELED":
		return StatusCanceled, true
	default:
		return 0, false
	}
}

// IsTerminal 是否为终态
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Item 订单明细项
// 设计说明：
// 1. 不是独立聚合根，必须通过Order访问
// 2. Price记录"下单时的单价快照"，图书后续改价不影响历史订单金额
// 3. 不直接关联Book对象，只保存BookID（避免跨聚合引用）
type Item struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
	Price    int64 // 下单时单价(分)
}

// Order 订单实体(聚合根)
type Order struct {
	ID          uint
	Status      Status
	Total       int64 // 订单总金额(分)，创建时由明细快照计算，之后不再重算
	ClientName  string
	Items       []Item
	OrderedAt   time.Time
	CompletedAt *time.Time // 完成时间，仅COMPLETED订单非nil
}

// NewOrder 创建新订单(工厂方法)
// 业务规则：
// 1. 明细非空，数量均为正（由调用方保证图书存在并填入当前价格）
// 2. 创建不扣库存：履约在状态转到COMPLETED时才发生
func NewOrder(clientName string, items []Item, at time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	o := &Order{
		Status:     StatusNew,
		ClientName: clientName,
		Items:      items,
		OrderedAt:  at,
	}
	o.Total = o.calculateTotal()
	return o, nil
}

// calculateTotal 按明细快照计算总金额
func (o *Order) calculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Complete 完成订单(领域行为)
// 终态守卫：已是COMPLETED/CANCELED时返回错误且状态不变
// 说明：库存检查与扣减由应用层在同一事务内完成，实体只负责状态机
func (o *Order) Complete(at time.Time) error {
	if o.Status.IsTerminal() {
		return ErrTerminalStatus
	}
	o.Status = StatusCompleted
	o.CompletedAt = &at
	return nil
}

// Cancel 取消订单(领域行为)
// 取消不恢复库存：创建时从未预占
func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return ErrTerminalStatus
	}
	o.Status = StatusCanceled
	return nil
}

// IsOwnedBy 检查订单是否属于指定客户（权限校验用）
func (o *Order) IsOwnedBy(clientName string) bool {
	return o.ClientName == clientName
}

// BookAmounts 返回明细的 图书ID → 数量 映射（DTO与导出文件使用）
func (o *Order) BookAmounts() map[uint]int {
	books := make(map[uint]int, len(o.Items))
	for _, item := range o.Items {
		books[item.BookID] += item.Quantity
	}
	return books
}
