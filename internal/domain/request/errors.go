package request

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 补货请求领域错误定义
var (
	// ErrRequestNotFound 请求不存在
	ErrRequestNotFound = apperrors.New(apperrors.KindNotFound, "补货请求不存在")

	// ErrInvalidAmount 请求数量必须大于0
	ErrInvalidAmount = apperrors.New(apperrors.KindInvalidArgument, "请求数量必须大于0")
)
