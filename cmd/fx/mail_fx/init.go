package mail_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"safari/internal/config"
	"safari/internal/services"
)

var Module = fx.Provide(provideMailService, provideDispatcher)

func provideMailService(cfg config.Config, log *zap.Logger) services.IMailService {
	transport := services.NewMailTransport(cfg)
	svc := services.NewMailService(services.MailSettingsFromConfig(cfg), transport, log)
	if !svc.Enabled() {
		log.Warn("no mail provider configured; notifications will be recorded, not sent")
		return svc
	}
	log.Info("mail transport ready", zap.String("transport", transport.Name()))
	return svc
}

// provideDispatcher drains in-flight notifications on shutdown.
func provideDispatcher(lc fx.Lifecycle, log *zap.Logger) *services.NotificationDispatcher {
	d := services.NewNotificationDispatcher(log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := d.Wait(ctx); err != nil {
				log.Warn("notifications still running at shutdown", zap.Error(err))
			}
			return nil
		},
	})
	return d
}
