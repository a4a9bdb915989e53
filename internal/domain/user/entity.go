package user

import (
	"time"
)

// 用户角色
// 设计说明：角色只有两档，直接用字符串常量（与JWT Claims里的role字段一致）
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User 用户实体（聚合根）
// 1. 密码已加密存储（bcrypt），不提供任何暴露明文的方法
// 2. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	Role      string // USER | ADMIN
	CreatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码；注册入口一律创建USER角色
func NewUser(username, hashedPassword string) *User {
	return &User{
		Username:  username,
		Password:  hashedPassword,
		Role:      RoleUser,
		CreatedAt: time.Now(),
	}
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
