package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"safari/internal/api/controllers"
	"safari/internal/repositories"
	"safari/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideReviewRepo,
	services.NewItineraryService, services.NewReviewService,
	controllers.NewItineraryController, controllers.NewReviewController,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}
