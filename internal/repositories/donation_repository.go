package repositories

import (
	"context"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *db_models.Donation) error
	List(ctx context.Context) ([]db_models.Donation, error)
	TotalsByType(ctx context.Context) ([]DonationTotal, error)
}

// DonationTotal aggregates recorded pledges per donation type.
type DonationTotal struct {
	DonationType string  `json:"donationType"`
	Count        int64   `json:"count"`
	Amount       float64 `json:"amount"`
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *db_models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) List(ctx context.Context) ([]db_models.Donation, error) {
	donations := []db_models.Donation{}
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) TotalsByType(ctx context.Context) ([]DonationTotal, error) {
	totals := []DonationTotal{}
	err := r.db.WithContext(ctx).
		Model(&db_models.Donation{}).
		Select("donation_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Group("donation_type").
		Order("donation_type").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
