package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
	"safari/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, req request_models.CreateReviewRequest) (*db_models.Review, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	log        *zap.Logger
}

func NewReviewService(reviewRepo repositories.ReviewRepository, log *zap.Logger) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo, log: log}
}

// AddReview stores the review and refreshes the itinerary's rating in the
// same transaction.
func (s *ReviewService) AddReview(ctx context.Context, req request_models.CreateReviewRequest) (*db_models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.NewValidationError("rating", "range", "must be between 1 and 5")
	}

	review := &db_models.Review{
		ItineraryID: req.ItineraryID,
		UserName:    strings.TrimSpace(req.UserName),
		Rating:      req.Rating,
		Comment:     req.Comment,
	}

	if err := s.reviewRepo.CreateAndRecompute(ctx, review); err != nil {
		if errors.Is(err, utils.ErrItineraryNotFound) {
			return nil, utils.NewValidationError("itineraryId", "exists", "must reference an existing itinerary")
		}
		s.log.Error("create review", zap.Uint("itinerary_id", req.ItineraryID), zap.Error(err))
		return nil, fmt.Errorf("%w: create review", utils.ErrDatabaseError)
	}
	return review, nil
}
