package user

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/user"
)

// RegisterUseCase 用户注册用例
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// Execute 注册新账号，固定USER角色
func (uc *RegisterUseCase) Execute(ctx context.Context, username, password string) (*user.User, error) {
	return uc.userService.Register(ctx, username, password)
}
