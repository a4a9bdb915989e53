package user

import (
	"context"
)

// Repository 用户仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建用户（用户名唯一性由数据库UNIQUE索引保证，
	// Repository负责把重复键错误转换为ErrUsernameTaken）
	Create(ctx context.Context, user *User) error

	// FindByUsername 根据用户名查找用户
	FindByUsername(ctx context.Context, username string) (*User, error)
}
