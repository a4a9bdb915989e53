package user

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.KindNotFound, "用户不存在")

	// ErrUsernameTaken 用户名已被占用
	ErrUsernameTaken = apperrors.New(apperrors.KindConflict, "用户名已被占用")

	// ErrBadCredentials 用户名或密码错误
	// 说明：登录失败统一返回该错误，不区分"用户不存在"与"密码错误"（防止用户名枚举）
	ErrBadCredentials = apperrors.New(apperrors.KindUnauthorized, "用户名或密码错误")

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.New(apperrors.KindInvalidArgument, "密码强度不足（需8-20位，包含字母和数字）")

	// ErrInvalidUsername 用户名不合法
	ErrInvalidUsername = apperrors.New(apperrors.KindInvalidArgument, "用户名长度应为3-50个字符")
)
