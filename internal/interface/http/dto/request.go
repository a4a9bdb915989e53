package dto

import (
	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	"github.com/xiebiao/bookshop/internal/domain/request"
)

// RequestResponse 补货请求响应
type RequestResponse struct {
	ID          uint   `json:"id"`
	BookID      uint   `json:"bookId"`
	Amount      int    `json:"amount"`
	Status      string `json:"status"`
	CreatedDate string `json:"createdDate"`
}

// FromRequest 领域实体 → 响应DTO
func FromRequest(req *request.Request) *RequestResponse {
	createdAt := req.CreatedAt
	return &RequestResponse{
		ID:          req.ID,
		BookID:      req.BookID,
		Amount:      req.Amount,
		Status:      req.Status.String(),
		CreatedDate: FormatTime(&createdAt),
	}
}

// FromRequests 批量转换
func FromRequests(requests []*request.Request) []*RequestResponse {
	result := make([]*RequestResponse, len(requests))
	for i, req := range requests {
		result[i] = FromRequest(req)
	}
	return result
}

// BookRequestsResponse 按图书汇总的补货请求响应
type BookRequestsResponse struct {
	Book        *BookResponse      `json:"book"`
	TotalAmount int                `json:"totalAmount"`
	Requests    []*RequestResponse `json:"requests"`
}

// FromBookRequests 汇总结果 → 响应DTO
func FromBookRequests(groups []appRequest.BookRequests) []*BookRequestsResponse {
	result := make([]*BookRequestsResponse, len(groups))
	for i, group := range groups {
		result[i] = &BookRequestsResponse{
			Book:        FromBook(group.Book),
			TotalAmount: group.TotalAmount,
			Requests:    FromRequests(group.Requests),
		}
	}
	return result
}
