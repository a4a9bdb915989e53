package order

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CompletedWindow 已完成订单的统计窗口
// Begin/End任一为nil表示该侧无界，闭区间
type CompletedWindow struct {
	Begin *time.Time
	End   *time.Time
}

func (w CompletedWindow) validate() error {
	if w.Begin != nil && w.End != nil && w.End.Before(*w.Begin) {
		return apperrors.New(apperrors.KindInvalidArgument, "统计窗口结束时间早于开始时间")
	}
	return nil
}

func (w CompletedWindow) filter() order.CompletedFilter {
	return order.CompletedFilter{Begin: w.Begin, End: w.End}
}

// ListCompletedUseCase 已完成订单列表用例
type ListCompletedUseCase struct {
	orderRepo order.Repository
}

// NewListCompletedUseCase 创建已完成订单列表用例
func NewListCompletedUseCase(orderRepo order.Repository) *ListCompletedUseCase {
	return &ListCompletedUseCase{orderRepo: orderRepo}
}

// Execute 查询窗口内完成的订单
func (uc *ListCompletedUseCase) Execute(ctx context.Context, window CompletedWindow, sortKey string) ([]*order.Order, error) {
	sort, ok := order.ParseSort(sortKey)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "不支持的排序键: %s", sortKey)
	}
	if err := window.validate(); err != nil {
		return nil, err
	}
	return uc.orderRepo.ListCompleted(ctx, window.filter(), sort)
}

// CountCompletedUseCase 已完成订单计数用例
type CountCompletedUseCase struct {
	orderRepo order.Repository
}

// NewCountCompletedUseCase 创建已完成订单计数用例
func NewCountCompletedUseCase(orderRepo order.Repository) *CountCompletedUseCase {
	return &CountCompletedUseCase{orderRepo: orderRepo}
}

// Execute 统计窗口内完成的订单数
func (uc *CountCompletedUseCase) Execute(ctx context.Context, window CompletedWindow) (int64, error) {
	if err := window.validate(); err != nil {
		return 0, err
	}
	return uc.orderRepo.CountCompleted(ctx, window.filter())
}

// EarnedSumUseCase 营收统计用例
type EarnedSumUseCase struct {
	orderRepo order.Repository
}

// NewEarnedSumUseCase 创建营收统计用例
func NewEarnedSumUseCase(orderRepo order.Repository) *EarnedSumUseCase {
	return &EarnedSumUseCase{orderRepo: orderRepo}
}

// Execute 统计窗口内完成订单的金额合计(分)
func (uc *EarnedSumUseCase) Execute(ctx context.Context, window CompletedWindow) (int64, error) {
	if err := window.validate(); err != nil {
		return 0, err
	}
	return uc.orderRepo.EarnedSum(ctx, window.filter())
}
