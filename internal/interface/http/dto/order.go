package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// CreateOrderRequest 下单请求体
// books为图书ID→数量的映射
type CreateOrderRequest struct {
	Books map[uint]int `json:"books" binding:"required,min=1"`
}

// OrderItemResponse 订单明细响应
type OrderItemResponse struct {
	BookID   uint  `json:"bookId"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID           uint                `json:"id"`
	Status       string              `json:"status"`
	Total        int64               `json:"total"`
	ClientName   string              `json:"clientName"`
	Items        []OrderItemResponse `json:"items"`
	OrderDate    string              `json:"orderDate"`
	CompleteDate string              `json:"completeDate,omitempty"`
}

// FromOrder 领域实体 → 响应DTO
func FromOrder(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	orderedAt := o.OrderedAt
	return &OrderResponse{
		ID:           o.ID,
		Status:       o.Status.String(),
		Total:        o.Total,
		ClientName:   o.ClientName,
		Items:        items,
		OrderDate:    FormatTime(&orderedAt),
		CompleteDate: FormatTime(o.CompletedAt),
	}
}

// FromOrders 批量转换
func FromOrders(orders []*order.Order) []*OrderResponse {
	result := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = FromOrder(o)
	}
	return result
}

// CountResponse 计数响应
type CountResponse struct {
	Count int64 `json:"count"`
}

// EarnedSumResponse 营收响应(分)
type EarnedSumResponse struct {
	EarnedSum int64 `json:"earnedSum"`
}
