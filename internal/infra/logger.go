package infra

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"safari/internal/config"
)

// NewLogger returns a JSON logger in production and a coloured console
// logger everywhere else.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zcfg.Build()
}
