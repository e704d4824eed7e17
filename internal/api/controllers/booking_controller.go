package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	log            *zap.Logger
}

func NewBookingController(bookingService services.BookingServiceInterface, log *zap.Logger) *BookingController {
	return &BookingController{bookingService: bookingService, log: log}
}

// CreateBooking godoc
// @Summary Request a booking
// @Description The reservations desk is emailed after the booking is stored; mail problems never fail the request
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking"
// @Success 201 {object} db_models.Booking
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}

	booking, err := bc.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, booking)
}

// ListBookings godoc
// @Summary List bookings
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} db_models.Booking
// @Failure 401 {object} utils.APIResponse
// @Router /bookings [get]
func (bc *BookingController) ListBookings(c *gin.Context) {
	bookings, err := bc.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, bc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, bookings)
}
