package repositories

import (
	"context"
	"testing"

	"gorm.io/datatypes"
	"safari/internal/infra/infratest"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
)

func seedItinerary(t *testing.T, repo ItineraryRepository, mutate func(*db_models.Itinerary)) *db_models.Itinerary {
	t.Helper()
	it := &db_models.Itinerary{
		Title:       "Serengeti Explorer",
		Description: "Great migration river crossings",
		Duration:    5,
		Location:    "Serengeti",
		Country:     "Tanzania",
		Highlights:  db_models.StringList{"Big five"},
		DayByDay:    datatypes.NewJSONType(map[string]string{"Day 1": "Arrive"}),
		Price:       2400,
		Category:    "wildlife",
	}
	if mutate != nil {
		mutate(it)
	}
	if err := repo.Create(context.Background(), it); err != nil {
		t.Fatalf("create itinerary: %v", err)
	}
	return it
}

func TestItineraryListFilters(t *testing.T) {
	repo := NewItineraryRepository(infratest.NewTestDB(t))
	ctx := context.Background()

	seedItinerary(t, repo, nil)
	seedItinerary(t, repo, func(it *db_models.Itinerary) {
		it.Title = "Masai Mara Classic"
		it.Location = "Masai Mara"
		it.Country = "Kenya"
	})
	seedItinerary(t, repo, func(it *db_models.Itinerary) {
		it.Title = "Kilimanjaro Trek"
		it.Description = "Summit via the Machame route"
		it.Location = "Moshi"
		it.Category = "adventure"
		it.DifficultyLevel = "hard"
	})

	cases := []struct {
		name   string
		filter request_models.ItineraryFilter
		want   []string
	}{
		{"no filter returns newest first", request_models.ItineraryFilter{}, []string{"Kilimanjaro Trek", "Masai Mara Classic", "Serengeti Explorer"}},
		{"text search is case-insensitive", request_models.ItineraryFilter{Query: "MARA"}, []string{"Masai Mara Classic"}},
		{"text search matches description", request_models.ItineraryFilter{Query: "machame"}, []string{"Kilimanjaro Trek"}},
		{"filters intersect", request_models.ItineraryFilter{Country: "Tanzania", Category: "wildlife"}, []string{"Serengeti Explorer"}},
		{"text and equality intersect", request_models.ItineraryFilter{Query: "serengeti", Country: "Kenya"}, nil},
		{"difficulty", request_models.ItineraryFilter{DifficultyLevel: "hard"}, []string{"Kilimanjaro Trek"}},
		{"wildcards are literal", request_models.ItineraryFilter{Query: "%"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d", len(tc.want), len(got))
			}
			for i, title := range tc.want {
				if got[i].Title != title {
					t.Fatalf("result %d: expected %q, got %q", i, title, got[i].Title)
				}
			}
		})
	}
}

func TestItineraryGetByIDMissing(t *testing.T) {
	repo := NewItineraryRepository(infratest.NewTestDB(t))

	got, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil itinerary, got %+v", got)
	}
}

func TestItineraryRoundTripsListsAndSchedule(t *testing.T) {
	repo := NewItineraryRepository(infratest.NewTestDB(t))
	created := seedItinerary(t, repo, func(it *db_models.Itinerary) {
		it.Highlights = db_models.StringList{"Balloon safari", "Sundowner, with view"}
	})

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v %v", got, err)
	}
	if len(got.Highlights) != 2 || got.Highlights[1] != "Sundowner, with view" {
		t.Fatalf("highlights not preserved: %v", got.Highlights)
	}
	if got.DayByDay.Data()["Day 1"] != "Arrive" {
		t.Fatalf("schedule not preserved: %v", got.DayByDay.Data())
	}
	if got.AverageRating != 0 || got.TotalReviews != 0 {
		t.Fatalf("new itinerary should start unrated, got %v/%d", got.AverageRating, got.TotalReviews)
	}
}
