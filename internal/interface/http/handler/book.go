package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apptransfer "github.com/xiebiao/bookshop/internal/application/transfer"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	getBook    *appbook.GetBookUseCase
	listBooks  *appbook.ListBooksUseCase
	addStock   *appbook.AddStockUseCase
	writeOff   *appbook.WriteOffUseCase
	staleBooks *appbook.StaleBooksUseCase
	transfer   *apptransfer.BookTransferUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	getBook *appbook.GetBookUseCase,
	listBooks *appbook.ListBooksUseCase,
	addStock *appbook.AddStockUseCase,
	writeOff *appbook.WriteOffUseCase,
	staleBooks *appbook.StaleBooksUseCase,
	transfer *apptransfer.BookTransferUseCase,
) *BookHandler {
	return &BookHandler{
		getBook:    getBook,
		listBooks:  listBooks,
		addStock:   addStock,
		writeOff:   writeOff,
		staleBooks: staleBooks,
		transfer:   transfer,
	}
}

// Get 查询单本图书
// @Summary      查询图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ProblemDetail "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	b, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBook(b))
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Param        sort query string false "排序键" Enums(ID, NAME, AUTHOR, PRICE, PUBLICATION_DATE, AMOUNT, LAST_SALE_DATE)
// @Success      200 {array} dto.BookResponse
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.listBooks.Execute(c.Request.Context(), c.Query("sort"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBooks(books))
}

// Stale 呆滞图书列表
// @Summary      呆滞图书列表
// @Description  长期未售出的图书，供下架决策参考
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        sort query string false "排序键"
// @Success      200 {array} dto.BookResponse
// @Router       /books/stale [get]
func (h *BookHandler) Stale(c *gin.Context) {
	books, err := h.staleBooks.Execute(c.Request.Context(), c.Query("sort"))
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBooks(books))
}

// AddStock 图书到货
// @Summary      图书到货
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id query int true "图书ID"
// @Param        amount query int true "到货数量"
// @Success      200 {object} dto.BookResponse
// @Failure      403 {object} response.ProblemDetail "需要管理员权限"
// @Router       /books/add [patch]
func (h *BookHandler) AddStock(c *gin.Context) {
	id, err := uintQuery(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}
	amount, err := intQuery(c, "amount")
	if err != nil {
		response.Problem(c, err)
		return
	}

	b, err := h.addStock.Execute(c.Request.Context(), id, amount)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBook(b))
}

// WriteOff 图书核销
// @Summary      图书核销
// @Description  非销售出库（盘亏、破损），不影响呆滞统计
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id query int true "图书ID"
// @Param        amount query int true "核销数量"
// @Success      200 {object} dto.BookResponse
// @Failure      409 {object} response.ProblemDetail "库存不足"
// @Router       /books/writeOff [patch]
func (h *BookHandler) WriteOff(c *gin.Context) {
	id, err := uintQuery(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}
	amount, err := intQuery(c, "amount")
	if err != nil {
		response.Problem(c, err)
		return
	}

	b, err := h.writeOff.Execute(c.Request.Context(), id, amount)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBook(b))
}

// ImportAll 从数据文件导入全部图书
// @Summary      导入全部图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BookResponse
// @Failure      400 {object} response.ProblemDetail "数据文件格式错误"
// @Router       /books/import [put]
func (h *BookHandler) ImportAll(c *gin.Context) {
	books, err := h.transfer.ImportAll(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBooks(books))
}

// ImportOne 从数据文件导入单本图书
// @Summary      导入单本图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Router       /books/import/{id} [put]
func (h *BookHandler) ImportOne(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	b, err := h.transfer.ImportOne(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBook(b))
}

// ExportAll 导出全部图书到数据文件
// @Summary      导出全部图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BookResponse
// @Failure      500 {object} response.ProblemDetail "写入数据文件失败"
// @Router       /books/export [put]
func (h *BookHandler) ExportAll(c *gin.Context) {
	books, err := h.transfer.ExportAll(c.Request.Context())
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBooks(books))
}

// ExportOne 导出单本图书到数据文件
// @Summary      导出单本图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Router       /books/export/{id} [put]
func (h *BookHandler) ExportOne(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.Problem(c, err)
		return
	}

	b, err := h.transfer.ExportOne(c.Request.Context(), id)
	if err != nil {
		response.Problem(c, err)
		return
	}

	response.JSON(c, dto.FromBook(b))
}
