package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
	"safari/pkg/utils"
)

type ItineraryServiceInterface interface {
	ListItineraries(ctx context.Context, filter request_models.ItineraryFilter) ([]db_models.Itinerary, error)
	GetItinerary(ctx context.Context, id uint) (*db_models.Itinerary, error)
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*db_models.Itinerary, error)
	ListReviews(ctx context.Context, itineraryID uint) ([]db_models.Review, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	reviewRepo    repositories.ReviewRepository
	log           *zap.Logger
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	reviewRepo repositories.ReviewRepository,
	log *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{itineraryRepo: itineraryRepo, reviewRepo: reviewRepo, log: log}
}

func (s *ItineraryService) ListItineraries(ctx context.Context, filter request_models.ItineraryFilter) ([]db_models.Itinerary, error) {
	itineraries, err := s.itineraryRepo.List(ctx, filter)
	if err != nil {
		s.log.Error("list itineraries", zap.Any("filter", filter), zap.Error(err))
		return nil, fmt.Errorf("%w: list itineraries", utils.ErrDatabaseError)
	}
	return itineraries, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id uint) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("get itinerary", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: get itinerary", utils.ErrDatabaseError)
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

// CreateItinerary always starts the rating aggregate at zero.
func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*db_models.Itinerary, error) {
	itinerary := NewItineraryFromRequest(req)
	if err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		s.log.Error("create itinerary", zap.String("title", req.Title), zap.Error(err))
		return nil, fmt.Errorf("%w: create itinerary", utils.ErrDatabaseError)
	}
	return itinerary, nil
}

func (s *ItineraryService) ListReviews(ctx context.Context, itineraryID uint) ([]db_models.Review, error) {
	reviews, err := s.reviewRepo.ListByItinerary(ctx, itineraryID)
	if err != nil {
		s.log.Error("list reviews", zap.Uint("itinerary_id", itineraryID), zap.Error(err))
		return nil, fmt.Errorf("%w: list reviews", utils.ErrDatabaseError)
	}
	return reviews, nil
}

// NewItineraryFromRequest maps a validated request onto a row. It is shared
// with the catalog importer.
func NewItineraryFromRequest(req request_models.CreateItineraryRequest) *db_models.Itinerary {
	days := make(map[string]string, len(req.DayByDay))
	for day, text := range req.DayByDay {
		days[strings.TrimSpace(day)] = strings.TrimSpace(text)
	}
	return &db_models.Itinerary{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Duration:        req.Duration,
		Location:        req.Location,
		Country:         req.Country,
		Highlights:      db_models.StringList(nonNilStrings(req.Highlights)),
		DayByDay:        datatypes.NewJSONType(days),
		Price:           req.Price,
		Category:        req.Category,
		PackageType:     req.PackageType,
		DifficultyLevel: req.DifficultyLevel,
		ImageURL:        req.ImageURL,
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
