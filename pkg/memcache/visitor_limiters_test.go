package mem

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestVisitorLimitersReuseAndExpire(t *testing.T) {
	clock := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	store := NewVisitorLimiters(rate.Every(time.Minute), 1, 10*time.Minute)
	store.now = func() time.Time { return clock }

	first := store.Get("10.0.0.1")
	if store.Get("10.0.0.1") != first {
		t.Fatal("same visitor should get the same limiter")
	}
	store.Get("10.0.0.2")
	if store.Len() != 2 {
		t.Fatalf("expected 2 visitors, got %d", store.Len())
	}

	clock = clock.Add(11 * time.Minute)
	store.Get("10.0.0.3")
	if store.Len() != 1 {
		t.Fatalf("idle visitors should be swept, got %d", store.Len())
	}
	if store.Get("10.0.0.1") == first {
		t.Fatal("expired visitor should get a fresh limiter")
	}
}
