// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// - Counter（计数器）：只增不减的累计值，如HTTP请求总数、订单总数
// - Histogram（直方图）：观测值的分布，如请求耗时
// - Gauge（仪表盘）：可增可减的瞬时值，如处理中的请求数
//
// 指标通过GET /metrics暴露，由Prometheus周期抓取
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal HTTP请求总数（按method、path、status分维度）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时分布
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 处理中的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// OrdersCreatedTotal 创建成功的订单总数
	OrdersCreatedTotal prometheus.Counter

	// OrdersCompletedTotal 完成的订单总数
	OrdersCompletedTotal prometheus.Counter

	// StockAdjustmentsTotal 库存调整次数（按direction=add|write_off分维度）
	StockAdjustmentsTotal *prometheus.CounterVec

	// RequestsClosedTotal 对账关闭的补货请求总数
	RequestsClosedTotal prometheus.Counter
)

// Init 注册所有指标
// 说明：使用promauto注册到默认Registry，重复调用会panic，只能在启动时调用一次
func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshop_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookshop_http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookshop_http_requests_in_progress",
			Help: "处理中的HTTP请求数",
		},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_orders_created_total",
			Help: "创建成功的订单总数",
		},
	)

	OrdersCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_orders_completed_total",
			Help: "完成的订单总数",
		},
	)

	StockAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshop_stock_adjustments_total",
			Help: "库存调整次数",
		},
		[]string{"direction"},
	)

	RequestsClosedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshop_requests_closed_total",
			Help: "对账关闭的补货请求总数",
		},
	)
}
