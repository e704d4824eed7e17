package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"safari/internal/api/controllers"
	"safari/internal/config"
	"safari/internal/repositories"
	"safari/internal/services"
)

var Module = fx.Provide(
	repositories.NewTeamMemberRepository,
	repositories.NewFleetVehicleRepository,
	repositories.NewVolunteerRepository,
	services.NewTeamMemberService,
	services.NewFleetVehicleService,
	services.NewVolunteerService,
	provideGalleryService,
	controllers.NewTeamMemberController,
	controllers.NewFleetVehicleController,
	controllers.NewVolunteerController,
	controllers.NewGalleryController,
)

func provideGalleryService(cfg config.Config, log *zap.Logger) services.GalleryServiceInterface {
	return services.NewGalleryService(cfg.GalleryDir, log)
}
