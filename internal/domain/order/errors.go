package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.KindNotFound, "订单不存在")

	// ErrEmptyItems 订单明细不能为空
	ErrEmptyItems = apperrors.New(apperrors.KindInvalidArgument, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.KindInvalidArgument, "购买数量必须大于0")

	// ErrTerminalStatus 终态订单不允许任何状态变更
	ErrTerminalStatus = apperrors.New(apperrors.KindConflict, "订单已处于终态，不允许此操作")

	// ErrUnknownStatus 非法的目标状态
	ErrUnknownStatus = apperrors.New(apperrors.KindInvalidArgument, "未知的订单状态")
)
