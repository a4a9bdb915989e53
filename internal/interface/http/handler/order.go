package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	apptransfer "github.com/xiebiao/bookshop/internal/application/transfer"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrder    *apporder.CreateOrderUseCase
	getOrder       *apporder.GetOrderUseCase
	cancelOrder    *apporder.CancelOrderUseCase
	setOrderStatus *apporder.SetOrderStatusUseCase
	listOrders     *apporder.ListOrdersUseCase
	listCompleted  *apporder.ListCompletedUseCase
	countCompleted *apporder.CountCompletedUseCase
	earnedSum      *apporder.EarnedSumUseCase
	transfer       *apptransfer.OrderTransferUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrder *apporder.CreateOrderUseCase,
	getOrder *apporder.GetOrderUseCase,
	cancelOrder *apporder.CancelOrderUseCase,
	setOrderStatus *apporder.SetOrderStatusUseCase,
	listOrders *apporder.ListOrdersUseCase,
	listCompleted *apporder.ListCompletedUseCase,
	countCompleted *apporder.CountCompletedUseCase,
	earnedSum *apporder.EarnedSumUseCase,
	transfer *apptransfer.OrderTransferUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrder:    createOrder,
		getOrder:       getOrder,
		cancelOrder:    cancelOrder,
		setOrderStatus: setOrderStatus,
		listOrders:     listOrders,
		listCompleted:  listCompleted,
		countCompleted: countCompleted,
		earnedSum:      earnedSum,
		transfer:       transfer,
	}
}

// Create 下单
// @Summary      下单
// @Description  买家以当前价格下单，库存在订单完成时扣减
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "图书ID到数量的映射"
// @Success      200 {object} dto.OrderResponse
// @Failure      400 {object} response.ProblemDetail "参数错误"
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		response.Problem(c, err)
		return
	}

	o, err := h.createOrder.Execute(c.Request.Context(), apporder.CreateOrderInput{
		ClientName: middleware.GetUsername(c),
		Books:      req.Books,
	})
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrder(o))
}

// Get 订单详情
// @Summary      订单详情
// @Description  普通用户只能查看自己的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} dto.OrderResponse
// @Failure      403 {object} response.ProblemDetail "无权查看"
// @Failure      404 {object} response.ProblemDetail "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	o, err := h.getOrder.Execute(c.Request.Context(), id, middleware.GetUsername(c), middleware.IsAdmin(c))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrder(o))
}

// Cancel 取消订单
// @Summary      取消订单
// @Description  普通用户只能取消自己的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} dto.OrderResponse
// @Failure      409 {object} response.ProblemDetail "订单已终结"
// @Router       /orders/cancelOrder/{id} [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	o, err := h.cancelOrder.Execute(c.Request.Context(), id, middleware.GetUsername(c), middleware.IsAdmin(c))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrder(o))
}

// SetStatus 流转订单状态
// @Summary      流转订单状态
// @Description  完成订单时校验并扣减库存，任何一本不足则整单失败
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        orderId query int true "订单ID"
// @Param        status query string true "目标状态" Enums(COMPLETED, CANCELED)
// @Success      200 {object} dto.OrderResponse
// @Failure      409 {object} response.ProblemDetail "库存不足或订单已终结"
// @Router       /orders/setOrderStatus [post]
func (h *OrderHandler) SetStatus(c *gin.Context) {
	orderID, err := uintQuery(c, "orderId")
	if err != nil {
		response.Problem(c, err)
		return
	}

	o, err := h.setOrderStatus.Execute(c.Request.Context(), orderID, c.Query("status"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrder(o))
}

// List 订单列表
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        sort query string false "排序键" Enums(ID, PRICE, STATUS, ORDER_DATE, COMPLETE_DATE)
// @Success      200 {array} dto.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.listOrders.Execute(c.Request.Context(), c.Query("sort"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrders(orders))
}

// Completed 已完成订单列表
// @Summary      已完成订单列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        sort query string false "排序键"
// @Param        begin query string false "窗口开始时间(15:04:05 02-01-2006)"
// @Param        end query string false "窗口结束时间(15:04:05 02-01-2006)"
// @Success      200 {array} dto.OrderResponse
// @Router       /orders/completed [get]
func (h *OrderHandler) Completed(c *gin.Context) {
	window, err := completedWindow(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	orders, err := h.listCompleted.Execute(c.Request.Context(), window, c.Query("sort"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrders(orders))
}

// CountCompleted 已完成订单计数
// @Summary      已完成订单计数
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        begin query string false "窗口开始时间"
// @Param        end query string false "窗口结束时间"
// @Success      200 {object} dto.CountResponse
// @Router       /orders/countCompletedOrders [get]
func (h *OrderHandler) CountCompleted(c *gin.Context) {
	window, err := completedWindow(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	count, err := h.countCompleted.Execute(c.Request.Context(), window)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.CountResponse{Count: count})
}

// EarnedSum 营收统计
// @Summary      营收统计
// @Description  窗口内完成订单的金额合计，单位为分
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        begin query string false "窗口开始时间"
// @Param        end query string false "窗口结束时间"
// @Success      200 {object} dto.EarnedSumResponse
// @Router       /orders/earnedSum [get]
func (h *OrderHandler) EarnedSum(c *gin.Context) {
	window, err := completedWindow(c)
	if err != nil {
		response.Problem(c, err)
		return
	}

	sum, err := h.earnedSum.Execute(c.Request.Context(), window)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.EarnedSumResponse{EarnedSum: sum})
}

// ImportAll 从数据文件导入全部订单
// @Summary      导入全部订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OrderResponse
// @Router       /orders/import [put]
func (h *OrderHandler) ImportAll(c *gin.Context) {
	orders, err := h.transfer.ImportAll(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrders(orders))
}

// ImportOne 从数据文件导入单个订单
// @Summary      导入单个订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} dto.OrderResponse
// @Router       /orders/import/{id} [put]
func (h *OrderHandler) ImportOne(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	o, err := h.transfer.ImportOne(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrder(o))
}

// ExportAll 导出全部订单到数据文件
// @Summary      导出全部订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OrderResponse
// @Router       /orders/export [put]
func (h *OrderHandler) ExportAll(c *gin.Context) {
	orders, err := h.transfer.ExportAll(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrders(orders))
}

// ExportOne 导出单个订单到数据文件
// @Summary      导出单个订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} dto.OrderResponse
// @Router       /orders/export/{id} [put]
func (h *OrderHandler) ExportOne(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	o, err := h.transfer.ExportOne(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromOrder(o))
}

// completedWindow 解析统计窗口参数
func completedWindow(c *gin.Context) (apporder.CompletedWindow, error) {
	begin, err := timeQuery(c, "begin")
	if err != nil {
		return apporder.CompletedWindow{}, err
	}
	end, err := timeQuery(c, "end")
	if err != nil {
		return apporder.CompletedWindow{}, err
	}
	return apporder.CompletedWindow{Begin: begin, End: end}, nil
}
