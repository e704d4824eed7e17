package repositories

import (
	"context"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *db_models.Inquiry) error
	List(ctx context.Context) ([]db_models.Inquiry, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *db_models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *inquiryRepository) List(ctx context.Context) ([]db_models.Inquiry, error) {
	inquiries := []db_models.Inquiry{}
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}
