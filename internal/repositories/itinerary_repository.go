package repositories

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
)

type ItineraryRepository interface {
	List(ctx context.Context, filter request_models.ItineraryFilter) ([]db_models.Itinerary, error)
	GetByID(ctx context.Context, id uint) (*db_models.Itinerary, error)
	Create(ctx context.Context, itinerary *db_models.Itinerary) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

type scope = func(*gorm.DB) *gorm.DB

// itineraryScopes turns the non-empty filter fields into predicates that
// gorm ANDs together.
func itineraryScopes(f request_models.ItineraryFilter) []scope {
	scopes := make([]scope, 0, 5)
	if q := strings.TrimSpace(f.Query); q != "" {
		scopes = append(scopes, containsText(q, "title", "description", "location"))
	}
	scopes = appendEquals(scopes, "category", f.Category)
	scopes = appendEquals(scopes, "package_type", f.PackageType)
	scopes = appendEquals(scopes, "country", f.Country)
	scopes = appendEquals(scopes, "difficulty_level", f.DifficultyLevel)
	return scopes
}

func appendEquals(scopes []scope, column, value string) []scope {
	value = strings.TrimSpace(value)
	if value == "" {
		return scopes
	}
	return append(scopes, func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	})
}

func containsText(term string, columns ...string) scope {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER("+col+") LIKE ? ESCAPE '\\'")
		args = append(args, pattern)
	}
	cond := "(" + strings.Join(parts, " OR ") + ")"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(cond, args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *itineraryRepository) List(ctx context.Context, filter request_models.ItineraryFilter) ([]db_models.Itinerary, error) {
	itineraries := []db_models.Itinerary{}
	err := r.db.WithContext(ctx).
		Scopes(itineraryScopes(filter)...).
		Order("id DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

// GetByID returns (nil, nil) when the itinerary does not exist.
func (r *itineraryRepository) GetByID(ctx context.Context, id uint) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

// recomputeRating rebuilds averageRating and totalReviews of one itinerary
// from the full set of its reviews.
func recomputeRating(tx *gorm.DB, itineraryID uint) error {
	var agg struct {
		Avg   sql.NullFloat64
		Total int64
	}
	err := tx.Model(&db_models.Review{}).
		Select("CAST(AVG(rating) AS FLOAT) AS avg, COUNT(*) AS total").
		Where("itinerary_id = ?", itineraryID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	avg := 0.0
	if agg.Avg.Valid {
		avg = math.Round(agg.Avg.Float64*100) / 100
	}

	return tx.Model(&db_models.Itinerary{}).
		Where("id = ?", itineraryID).
		Updates(map[string]any{
			"average_rating": avg,
			"total_reviews":  agg.Total,
		}).Error
}
