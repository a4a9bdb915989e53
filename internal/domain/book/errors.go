package book

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.KindNotFound, "图书不存在")

	// ErrInvalidName 书名不能为空
	ErrInvalidName = apperrors.New(apperrors.KindInvalidArgument, "书名不能为空")

	// ErrInvalidAmount 无效的数量
	ErrInvalidAmount = apperrors.New(apperrors.KindInvalidArgument, "数量必须大于0")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.KindInvalidArgument, "价格不能为负数")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.New(apperrors.KindConflict, "库存不足")
)
