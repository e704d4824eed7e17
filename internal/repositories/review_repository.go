package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"safari/internal/models/db_models"
	"safari/pkg/utils"
)

type ReviewRepository interface {
	// CreateAndRecompute inserts the review and refreshes the parent
	// itinerary's rating in one transaction. It returns
	// utils.ErrItineraryNotFound when the parent does not exist.
	CreateAndRecompute(ctx context.Context, review *db_models.Review) error
	ListByItinerary(ctx context.Context, itineraryID uint) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateAndRecompute(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the parent row so concurrent reviews of one itinerary
		// recompute one after another, each seeing the previous commit.
		q := tx.Select("id")
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var parent db_models.Itinerary
		if err := q.First(&parent, review.ItineraryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrItineraryNotFound
			}
			return err
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recomputeRating(tx, review.ItineraryID)
	})
}

func (r *reviewRepository) ListByItinerary(ctx context.Context, itineraryID uint) ([]db_models.Review, error) {
	reviews := []db_models.Review{}
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
