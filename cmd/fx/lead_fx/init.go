package lead_fx

import (
	"go.uber.org/fx"
	"safari/internal/api/controllers"
	"safari/internal/repositories"
	"safari/internal/services"
)

// Module covers the lead-capture forms: bookings, contact inquiries and
// donations.
var Module = fx.Provide(
	repositories.NewBookingRepository,
	repositories.NewInquiryRepository,
	repositories.NewDonationRepository,
	services.NewBookingService,
	services.NewInquiryService,
	services.NewDonationService,
	controllers.NewBookingController,
	controllers.NewInquiryController,
	controllers.NewDonationController,
)
