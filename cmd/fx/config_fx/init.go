package config_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"safari/internal/config"
	"safari/internal/infra"
	"safari/pkg/utils"
)

const adminTokenTTL = 12 * time.Hour

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenManager,
)

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	log, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

func provideTokenManager(cfg config.Config, log *zap.Logger) *utils.TokenManager {
	if !cfg.AdminEnabled() {
		log.Warn("JWT_SECRET or ADMIN_PASSWORD_HASH not set; admin endpoints will reject every request")
	}
	return utils.NewTokenManager(cfg.JWTSecret, adminTokenTTL)
}
