package memcache_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"safari/internal/config"
	mem "safari/pkg/memcache"
)

const visitorTTL = 10 * time.Minute

var Module = fx.Provide(provideLimiterStore)

// provideLimiterStore returns a nil store, which disables limiting, unless
// RATE_LIMIT_PER_MINUTE is positive.
func provideLimiterStore(cfg config.Config, log *zap.Logger) mem.LimiterStore {
	perMinute := cfg.RateLimitPerMinute
	if perMinute <= 0 {
		return nil
	}
	log.Info("lead rate limiting enabled", zap.Int("per_minute", perMinute))
	return mem.NewVisitorLimiters(rate.Limit(float64(perMinute)/60), perMinute, visitorTTL)
}
