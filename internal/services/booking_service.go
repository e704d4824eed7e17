package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
	"safari/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*db_models.Booking, error)
	ListBookings(ctx context.Context) ([]db_models.Booking, error)
}

type BookingService struct {
	bookingRepo   repositories.BookingRepository
	itineraryRepo repositories.ItineraryRepository
	mail          IMailService
	notifier      *NotificationDispatcher
	log           *zap.Logger
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	itineraryRepo repositories.ItineraryRepository,
	mail IMailService,
	notifier *NotificationDispatcher,
	log *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:   bookingRepo,
		itineraryRepo: itineraryRepo,
		mail:          mail,
		notifier:      notifier,
		log:           log,
	}
}

// CreateBooking persists first; the reservations desk is notified
// afterwards and a mail failure never fails the booking.
func (s *BookingService) CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*db_models.Booking, error) {
	booking := &db_models.Booking{
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.TrimSpace(req.Email),
		Phone:            req.Phone,
		CountryCode:      req.CountryCode,
		ItineraryID:      req.ItineraryID,
		PreferredDates:   req.PreferredDates,
		NumberOfAdults:   intOrDefault(req.NumberOfAdults, 1),
		NumberOfKids:     intOrDefault(req.NumberOfKids, 0),
		NumberOfToddlers: intOrDefault(req.NumberOfToddlers, 0),
		Message:          req.Message,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.log.Error("create booking", zap.String("email", booking.Email), zap.Error(err))
		return nil, fmt.Errorf("%w: create booking", utils.ErrDatabaseError)
	}

	saved := *booking
	s.notifier.Dispatch(ctx, "booking", func(ctx context.Context) (MailStatus, error) {
		return s.mail.NotifyBooking(ctx, saved, s.itineraryTitle(ctx, saved.ItineraryID))
	})
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.log.Error("list bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: list bookings", utils.ErrDatabaseError)
	}
	return bookings, nil
}

// itineraryTitle is a nicety for the notification; lookups that fail are
// ignored since the itinerary reference is not enforced.
func (s *BookingService) itineraryTitle(ctx context.Context, id uint) string {
	itinerary, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil || itinerary == nil {
		return ""
	}
	return itinerary.Title
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
