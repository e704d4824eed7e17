package router_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"safari/internal/api"
	"safari/internal/api/controllers"
	"safari/internal/config"
	mem "safari/pkg/memcache"
	"safari/pkg/utils"
)

var Module = fx.Provide(provideRouter)

type routerParams struct {
	fx.In

	Config  config.Config
	Log     *zap.Logger
	Tokens  *utils.TokenManager
	Limiter mem.LimiterStore

	Itinerary *controllers.ItineraryController
	Review    *controllers.ReviewController
	Booking   *controllers.BookingController
	Inquiry   *controllers.InquiryController
	Donation  *controllers.DonationController
	Payment   *controllers.PaymentController
	Team      *controllers.TeamMemberController
	Fleet     *controllers.FleetVehicleController
	Volunteer *controllers.VolunteerController
	Gallery   *controllers.GalleryController
	Admin     *controllers.AdminController
}

func provideRouter(p routerParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(p.Log, api.RouterOptions{
		CORSOrigins: p.Config.CORSOrigins,
		GalleryDir:  p.Config.GalleryDir,
		Tokens:      p.Tokens,
		Limiter:     p.Limiter,
	}, api.Controllers{
		Itinerary: p.Itinerary,
		Review:    p.Review,
		Booking:   p.Booking,
		Inquiry:   p.Inquiry,
		Donation:  p.Donation,
		Payment:   p.Payment,
		Team:      p.Team,
		Fleet:     p.Fleet,
		Volunteer: p.Volunteer,
		Gallery:   p.Gallery,
		Admin:     p.Admin,
	})
}
