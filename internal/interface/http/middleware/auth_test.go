package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

type fakeBlacklist struct {
	tokens map[string]bool
}

func (f *fakeBlacklist) IsInBlacklist(_ context.Context, token string) (bool, error) {
	return f.tokens[token], nil
}

func newTestRouter(m *AuthMiddleware, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if adminOnly {
		handlers = append(handlers, m.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetUsername(c), "role": GetRole(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	blacklist := &fakeBlacklist{tokens: map[string]bool{}}
	m := NewAuthMiddleware(manager, blacklist)

	t.Run("有效Token放行并注入用户信息", func(t *testing.T) {
		token, err := manager.GenerateToken("alice", user.RoleUser)
		require.NoError(t, err)

		w := doRequest(newTestRouter(m, false), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("缺少Authorization头", func(t *testing.T) {
		w := doRequest(newTestRouter(m, false), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("非Bearer格式", func(t *testing.T) {
		w := doRequest(newTestRouter(m, false), "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("伪造Token被拒绝", func(t *testing.T) {
		other := jwt.NewManager("other-secret", time.Hour)
		token, err := other.GenerateToken("alice", user.RoleUser)
		require.NoError(t, err)

		w := doRequest(newTestRouter(m, false), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("已登出的Token即使有效也被拒绝", func(t *testing.T) {
		token, err := manager.GenerateToken("alice", user.RoleUser)
		require.NoError(t, err)
		blacklist.tokens[token] = true

		w := doRequest(newTestRouter(m, false), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	m := NewAuthMiddleware(manager, &fakeBlacklist{tokens: map[string]bool{}})

	t.Run("管理员放行", func(t *testing.T) {
		token, err := manager.GenerateToken("root", user.RoleAdmin)
		require.NoError(t, err)

		w := doRequest(newTestRouter(m, true), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("普通用户被拒绝", func(t *testing.T) {
		token, err := manager.GenerateToken("alice", user.RoleUser)
		require.NoError(t, err)

		w := doRequest(newTestRouter(m, true), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
