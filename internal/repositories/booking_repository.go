package repositories

import (
	"context"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.Booking) error
	List(ctx context.Context) ([]db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// List returns the newest bookings first.
func (r *bookingRepository) List(ctx context.Context) ([]db_models.Booking, error) {
	bookings := []db_models.Booking{}
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
