package repositories

import (
	"context"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
)

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *db_models.Volunteer) error
	ListActive(ctx context.Context) ([]db_models.Volunteer, error)
}

type volunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *db_models.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepository) ListActive(ctx context.Context) ([]db_models.Volunteer, error) {
	volunteers := []db_models.Volunteer{}
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.VolunteerStatusActive).
		Order("id ASC").
		Find(&volunteers).Error
	if err != nil {
		return nil, err
	}
	return volunteers, nil
}
