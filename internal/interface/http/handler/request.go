package handler

import (
	"github.com/gin-gonic/gin"

	appRequest "github.com/xiebiao/bookshop/internal/application/request"
	apptransfer "github.com/xiebiao/bookshop/internal/application/transfer"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// RequestHandler 补货请求HTTP处理器
type RequestHandler struct {
	createRequest   *appRequest.CreateRequestUseCase
	groupedRequests *appRequest.GroupedRequestsUseCase
	listRequests    *appRequest.ListRequestsUseCase
	transfer        *apptransfer.RequestTransferUseCase
}

// NewRequestHandler 创建补货请求处理器
func NewRequestHandler(
	createRequest *appRequest.CreateRequestUseCase,
	groupedRequests *appRequest.GroupedRequestsUseCase,
	listRequests *appRequest.ListRequestsUseCase,
	transfer *apptransfer.RequestTransferUseCase,
) *RequestHandler {
	return &RequestHandler{
		createRequest:   createRequest,
		groupedRequests: groupedRequests,
		listRequests:    listRequests,
		transfer:        transfer,
	}
}

// Create 登记补货请求
// @Summary      登记补货请求
// @Description  库存已满足时请求创建即关闭
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Param        bookId query int true "图书ID"
// @Param        amount query int true "请求数量"
// @Success      200 {object} dto.RequestResponse
// @Failure      404 {object} response.ProblemDetail "图书不存在"
// @Router       /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	bookID, err := uintQuery(c, "bookId")
	if err != nil {
		response.Problem(c, err)
		return
	}
	amount, err := intQuery(c, "amount")
	if err != nil {
		response.Problem(c, err)
		return
	}

	req, err := h.createRequest.Execute(c.Request.Context(), bookID, amount)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromRequest(req))
}

// Grouped 按图书汇总未关闭的补货请求
// @Summary      补货请求汇总
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BookRequestsResponse
// @Router       /requests [get]
func (h *RequestHandler) Grouped(c *gin.Context) {
	groups, err := h.groupedRequests.Execute(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBookRequests(groups))
}

// ListAll 补货请求全量列表（含已关闭）
// @Summary      补货请求全量列表
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Param        sort query string false "排序键" Enums(ID, BOOK_ID, AMOUNT, STATUS)
// @Success      200 {array} dto.RequestResponse
// @Router       /requests/getAll [get]
func (h *RequestHandler) ListAll(c *gin.Context) {
	requests, err := h.listRequests.Execute(c.Request.Context(), c.Query("sort"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromRequests(requests))
}

// ImportAll 从数据文件导入全部补货请求
// @Summary      导入全部补货请求
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.RequestResponse
// @Router       /requests/import [put]
func (h *RequestHandler) ImportAll(c *gin.Context) {
	requests, err := h.transfer.ImportAll(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromRequests(requests))
}

// ImportOne 从数据文件导入单条补货请求
// @Summary      导入单条补货请求
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "请求ID"
// @Success      200 {object} dto.RequestResponse
// @Router       /requests/import/{id} [put]
func (h *RequestHandler) ImportOne(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	req, err := h.transfer.ImportOne(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromRequest(req))
}

// ExportAll 导出全部补货请求到数据文件
// @Summary      导出全部补货请求
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.RequestResponse
// @Router       /requests/export [put]
func (h *RequestHandler) ExportAll(c *gin.Context) {
	requests, err := h.transfer.ExportAll(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromRequests(requests))
}

// ExportOne 导出单条补货请求到数据文件
// @Summary      导出单条补货请求
// @Tags         补货请求
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "请求ID"
// @Success      200 {object} dto.RequestResponse
// @Router       /requests/export/{id} [put]
func (h *RequestHandler) ExportOne(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	req, err := h.transfer.ExportOne(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromRequest(req))
}
