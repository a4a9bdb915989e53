package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/user"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/response"
)

const (
	ctxKeyUsername = "username"
	ctxKeyRole     = "role"
	ctxKeyToken    = "token"
)

// TokenBlacklist 已登出Token的查询接口，生产实现为redis会话存储
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Token：Authorization: Bearer <token>
// 2. 检查Token黑名单（已登出的Token立即失效）
// 3. 验证Token并将用户名、角色注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Problem(c, apperrors.New(apperrors.KindUnauthorized, "请先登录"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Problem(c, apperrors.ErrInvalidToken)
			return
		}
		tokenString := parts[1]

		// 黑名单优先于签名校验，登出的Token即使未过期也拒绝
		isBlacklisted, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Problem(c, err)
			return
		}
		if isBlacklisted {
			response.Problem(c, apperrors.New(apperrors.KindUnauthorized, "Token已失效，请重新登录"))
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Problem(c, err)
			return
		}

		c.Set(ctxKeyUsername, claims.Username)
		c.Set(ctxKeyRole, claims.Role)
		c.Set(ctxKeyToken, tokenString)

		c.Next()
	}
}

// RequireAdmin 要求管理员角色，必须在RequireAuth之后使用
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != user.RoleAdmin {
			response.Problem(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetUsername 从Context获取当前登录用户名
func GetUsername(c *gin.Context) string {
	if v, exists := c.Get(ctxKeyUsername); exists {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}

// GetRole 从Context获取当前登录用户角色
func GetRole(c *gin.Context) string {
	if v, exists := c.Get(ctxKeyRole); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// GetToken 从Context获取当前请求携带的原始Token
func GetToken(c *gin.Context) string {
	if v, exists := c.Get(ctxKeyToken); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// IsAdmin 当前登录用户是否为管理员
func IsAdmin(c *gin.Context) bool {
	return GetRole(c) == user.RoleAdmin
}
