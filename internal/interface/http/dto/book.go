// Package dto 定义HTTP出入参结构与领域对象的转换。
package dto

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// DateTimeLayout 对外接口统一的时间格式
const DateTimeLayout = "15:04:05 02-01-2006"

// FormatTime 按对外格式渲染时间，nil渲染为空串
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// ParseTime 解析对外格式的时间参数
func ParseTime(value string) (time.Time, error) {
	return time.Parse(DateTimeLayout, value)
}

// BookResponse 图书响应
type BookResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Author            string `json:"author"`
	PublicationDate   int    `json:"publicationDate"`
	Amount            int    `json:"amount"`
	Price             int64  `json:"price"`
	LastDeliveredDate string `json:"lastDeliveredDate,omitempty"`
	LastSaleDate      string `json:"lastSaleDate,omitempty"`
	Status            string `json:"status"`
}

// FromBook 领域实体 → 响应DTO
func FromBook(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:                b.ID,
		Name:              b.Name,
		Author:            b.Author,
		PublicationDate:   b.PublicationDate,
		Amount:            b.Amount,
		Price:             b.Price,
		LastDeliveredDate: FormatTime(b.LastDeliveredAt),
		LastSaleDate:      FormatTime(b.LastSaleAt),
		Status:            b.Status.String(),
	}
}

// FromBooks 批量转换
func FromBooks(books []*book.Book) []*BookResponse {
	result := make([]*BookResponse, len(books))
	for i, b := range books {
		result[i] = FromBook(b)
	}
	return result
}
