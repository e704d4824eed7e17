package repositories

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"safari/internal/infra/infratest"
	"safari/internal/models/db_models"
	"safari/pkg/utils"
)

func TestReviewCreateRecomputesRating(t *testing.T) {
	db := infratest.NewTestDB(t)
	itineraries := NewItineraryRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	it := seedItinerary(t, itineraries, nil)

	for _, rating := range []int{4, 5, 5} {
		review := &db_models.Review{ItineraryID: it.ID, UserName: "Ann", Rating: rating, Comment: "Lovely"}
		if err := reviews.CreateAndRecompute(ctx, review); err != nil {
			t.Fatalf("create review: %v", err)
		}
		if review.ID == 0 {
			t.Fatal("review id should be assigned")
		}
	}

	got, _ := itineraries.GetByID(ctx, it.ID)
	if got.TotalReviews != 3 {
		t.Fatalf("expected 3 reviews, got %d", got.TotalReviews)
	}
	if got.AverageRating != 4.67 {
		t.Fatalf("expected average 4.67, got %v", got.AverageRating)
	}

	list, err := reviews.ListByItinerary(ctx, it.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ID < list[2].ID {
		t.Fatalf("expected 3 reviews newest first, got %+v", list)
	}
}

func TestReviewCreateMissingItinerary(t *testing.T) {
	db := infratest.NewTestDB(t)
	reviews := NewReviewRepository(db)

	err := reviews.CreateAndRecompute(context.Background(), &db_models.Review{ItineraryID: 99, UserName: "Ann", Rating: 3, Comment: "x"})
	if !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("expected ErrItineraryNotFound, got %v", err)
	}

	var count int64
	db.Model(&db_models.Review{}).Count(&count)
	if count != 0 {
		t.Fatalf("no review should be stored, found %d", count)
	}
}

func TestReviewOutOfRangeRatingRollsBack(t *testing.T) {
	db := infratest.NewTestDB(t)
	itineraries := NewItineraryRepository(db)
	reviews := NewReviewRepository(db)
	it := seedItinerary(t, itineraries, nil)

	err := reviews.CreateAndRecompute(context.Background(), &db_models.Review{ItineraryID: it.ID, UserName: "Ann", Rating: 6, Comment: "x"})
	if err == nil {
		t.Fatal("check constraint should reject rating 6")
	}

	got, _ := itineraries.GetByID(context.Background(), it.ID)
	if got.TotalReviews != 0 {
		t.Fatalf("rating must not change, got %d reviews", got.TotalReviews)
	}
}

func TestReviewConcurrentInsertsKeepAggregateExact(t *testing.T) {
	db := infratest.NewTestDB(t)
	itineraries := NewItineraryRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()
	it := seedItinerary(t, itineraries, nil)

	ratings := []int{1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 5, 5}
	errs := make(chan error, len(ratings))
	var wg sync.WaitGroup
	for _, rating := range ratings {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			errs <- reviews.CreateAndRecompute(ctx, &db_models.Review{
				ItineraryID: it.ID,
				UserName:    "Guest",
				Rating:      rating,
				Comment:     "Concurrent visit",
			})
		}(rating)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	wantAvg := math.Round(float64(sum)/float64(len(ratings))*100) / 100

	got, err := itineraries.GetByID(ctx, it.ID)
	if err != nil {
		t.Fatalf("get itinerary: %v", err)
	}
	if got.TotalReviews != len(ratings) {
		t.Fatalf("expected %d reviews, got %d", len(ratings), got.TotalReviews)
	}
	if got.AverageRating != wantAvg {
		t.Fatalf("expected average %v, got %v", wantAvg, got.AverageRating)
	}
}
