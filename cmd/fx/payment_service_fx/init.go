package payment_service_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"safari/internal/api/controllers"
	"safari/internal/config"
	"safari/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePaymentController,
)

func providePaymentService(cfg config.Config, log *zap.Logger) services.PaymentService {
	if !cfg.PaymentsEnabled() {
		log.Warn("STRIPE_SECRET_KEY not set; payment endpoints will report the provider as not configured")
	}
	return services.NewPaymentService(services.NewStripeGateway(cfg.StripeSecretKey), log)
}

func providePaymentController(paymentService services.PaymentService, log *zap.Logger) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService, log)
}
