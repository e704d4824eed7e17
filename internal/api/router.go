package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/api/controllers"
	"safari/internal/services"
	mem "safari/pkg/memcache"
	"safari/pkg/middleware"
	"safari/pkg/utils"
)

// Controllers groups every HTTP handler the router mounts.
type Controllers struct {
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

type RouterOptions struct {
	CORSOrigins []string
	GalleryDir  string
	Tokens      *utils.TokenManager
	// Limiter throttles lead-capture POSTs per client IP; nil disables it.
	Limiter mem.LimiterStore
}

func NewRouter(log *zap.Logger, opts RouterOptions, h Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Error("panic recovered", zap.Any("panic", rec), zap.String("trace_id", c.GetString("trace_id")))
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware(opts.CORSOrigins))

	r.GET("/health", controllers.Health)
	if opts.GalleryDir != "" {
		r.Static(services.GalleryURLPrefix, opts.GalleryDir)
	}

	RegisterRoutes(r.Group("/api"), opts, h)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
	return r
}

func RegisterRoutes(api *gin.RouterGroup, opts RouterOptions, h Controllers) {
	leads := api.Group("", middleware.RateLimit(opts.Limiter))
	admin := api.Group("", middleware.AdminAuthMiddleware(opts.Tokens))

	api.GET("/itineraries", h.Itinerary.ListItineraries)
	api.GET("/itineraries/:id", h.Itinerary.GetItinerary)
	api.GET("/itineraries/:id/reviews", h.Itinerary.ListReviews)
	admin.POST("/itineraries", h.Itinerary.CreateItinerary)

	leads.POST("/reviews", h.Review.CreateReview)

	leads.POST("/bookings", h.Booking.CreateBooking)
	admin.GET("/bookings", h.Booking.ListBookings)

	leads.POST("/inquiries", h.Inquiry.CreateInquiry)
	admin.GET("/inquiries", h.Inquiry.ListInquiries)

	leads.POST("/donation-inquiries", h.Donation.CreateDonationInquiry)
	leads.POST("/donations", h.Donation.CreateDonation)
	admin.GET("/donations", h.Donation.ListDonations)
	admin.GET("/donations/totals", h.Donation.DonationTotals)

	leads.POST("/create-donation-intent", h.Payment.CreateDonationIntent)
	leads.POST("/create-subscription", h.Payment.CreateSubscription)

	api.GET("/team-members", h.Team.ListTeamMembers)
	api.POST("/team-members", h.Team.CreateTeamMember)

	api.GET("/fleet-vehicles", h.Fleet.ListVehicles)
	api.POST("/fleet-vehicles", h.Fleet.CreateVehicle)

	api.GET("/volunteers", h.Volunteer.ListVolunteers)
	leads.POST("/volunteers", h.Volunteer.CreateVolunteer)

	api.GET("/gallery-images", h.Gallery.ListImages)

	leads.POST("/admin/login", h.Admin.Login)
}
