package user

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 校验用户名密码（失败统一返回凭证错误，不暴露用户是否存在）
// 2. 签发JWT并在Redis记录会话
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// LoginResult 登录结果
type LoginResult struct {
	Token string
	Role  string
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := uc.userService.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := uc.jwtManager.GenerateToken(u.Username, u.Role)
	if err != nil {
		return nil, err
	}

	// 会话记录失败不阻断登录，只影响在线统计
	sessionData := map[string]interface{}{
		"role":     u.Role,
		"login_at": time.Now().Format(time.RFC3339),
	}
	_ = uc.sessionStore.SaveSession(ctx, u.Username, sessionData, uc.jwtManager.Expire())

	return &LoginResult{Token: token, Role: u.Role}, nil
}

// LogoutUseCase 用户登出用例
// Token加入黑名单后立即失效，TTL与Token有效期一致
type LogoutUseCase struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{jwtManager: jwtManager, sessionStore: sessionStore}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute(ctx context.Context, username, token string) error {
	if err := uc.sessionStore.AddToBlacklist(ctx, token, uc.jwtManager.Expire()); err != nil {
		return err
	}
	return uc.sessionStore.DeleteSession(ctx, username)
}
