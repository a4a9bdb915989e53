package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置
// 字段与config.yaml的log节对应（由infrastructure/config装配）
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	EnableCaller bool
}

// New 创建zap日志器
// 设计说明：
// 1. 开发环境用console编码（带颜色等级），生产环境用json编码（便于采集）
// 2. 级别非法时直接报错，不静默降级
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("非法的日志级别 %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableCaller = !cfg.EnableCaller

	return zapCfg.Build()
}
