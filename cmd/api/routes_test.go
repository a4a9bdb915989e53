package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

// memBookRepo 只读内存图书仓储，路由测试用
type memBookRepo struct {
	books map[uint]*book.Book
}

func (r *memBookRepo) Create(_ context.Context, _ *book.Book) error { return nil }
func (r *memBookRepo) Update(_ context.Context, _ *book.Book) error { return nil }
func (r *memBookRepo) Save(_ context.Context, _ *book.Book) error   { return nil }

func (r *memBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *memBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *memBookRepo) List(_ context.Context, _ book.Sort) ([]*book.Book, error) {
	result := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		result = append(result, b)
	}
	return result, nil
}

func (r *memBookRepo) ListStale(_ context.Context, _ time.Time, _ book.Sort) ([]*book.Book, error) {
	return nil, nil
}

type memBlacklist struct{}

func (memBlacklist) IsInBlacklist(_ context.Context, _ string) (bool, error) { return false, nil }

func newTestEngine(t *testing.T, manager *jwt.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bookRepo := &memBookRepo{books: map[uint]*book.Book{
		1: {ID: 1, Name: "Go语言实战", Author: "张三", Amount: 5, Price: 5900, Status: book.StatusAvailable},
	}}
	bookHandler := handler.NewBookHandler(
		appbook.NewGetBookUseCase(bookRepo),
		appbook.NewListBooksUseCase(bookRepo),
		nil, nil,
		appbook.NewStaleBooksUseCase(bookRepo, 30*24*time.Hour),
		nil,
	)

	r := gin.New()
	registerRoutes(
		r,
		bookHandler,
		&handler.OrderHandler{},
		&handler.RequestHandler{},
		&handler.AuthHandler{},
		middleware.NewAuthMiddleware(manager, memBlacklist{}),
	)
	return r
}

func bearerFor(t *testing.T, manager *jwt.Manager, username, role string) string {
	t.Helper()
	token, err := manager.GenerateToken(username, role)
	require.NoError(t, err)
	return "Bearer " + token
}

// 路由级角色门禁：管理端点对普通用户与匿名请求关闭，
// 图书列表与详情匿名可读
func TestRouteRoleGating(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	engine := newTestEngine(t, manager)
	userToken := bearerFor(t, manager, "alice", user.RoleUser)

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{"匿名访问图书详情", http.MethodGet, "/books/1", "", http.StatusOK},
		{"匿名访问图书列表", http.MethodGet, "/books", "", http.StatusOK},
		{"匿名访问呆滞报表", http.MethodGet, "/books/stale", "", http.StatusUnauthorized},
		{"普通用户访问呆滞报表", http.MethodGet, "/books/stale", userToken, http.StatusForbidden},
		{"普通用户到货操作", http.MethodPatch, "/books/add", userToken, http.StatusForbidden},
		{"普通用户核销操作", http.MethodPatch, "/books/writeOff", userToken, http.StatusForbidden},
		{"普通用户导出图书", http.MethodPut, "/books/export", userToken, http.StatusForbidden},
		{"普通用户流转订单状态", http.MethodPost, "/orders/setOrderStatus", userToken, http.StatusForbidden},
		{"普通用户查询全部订单", http.MethodGet, "/orders", userToken, http.StatusForbidden},
		{"普通用户导入补货请求", http.MethodPut, "/requests/import", userToken, http.StatusForbidden},
		{"匿名下单", http.MethodPost, "/orders", "", http.StatusUnauthorized},
		{"匿名登记补货请求", http.MethodPost, "/requests", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
