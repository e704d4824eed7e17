package admin_fx

import (
	"go.uber.org/fx"
	"safari/internal/api/controllers"
	"safari/internal/services"
)

var Module = fx.Provide(
	services.NewAdminService,
	controllers.NewAdminController,
)
