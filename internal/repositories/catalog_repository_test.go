package repositories

import (
	"context"
	"testing"

	"safari/internal/infra/infratest"
	"safari/internal/models/db_models"
)

func TestFleetListsOnlyAvailable(t *testing.T) {
	repo := NewFleetVehicleRepository(infratest.NewTestDB(t))
	ctx := context.Background()

	for _, v := range []db_models.FleetVehicle{
		{Name: "Land Cruiser", Capacity: 7, Available: true},
		{Name: "Old Rover", Capacity: 5, Available: false},
		{Name: "Pop-top Van", Capacity: 6, Available: true, Features: db_models.StringList{"Pop-up roof"}},
	} {
		v := v
		if err := repo.Create(ctx, &v); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Land Cruiser" || got[1].Name != "Pop-top Van" {
		t.Fatalf("unexpected fleet %+v", got)
	}
	if got[0].Features == nil {
		t.Fatal("features should not be nil")
	}
}

func TestVolunteersListsOnlyActive(t *testing.T) {
	repo := NewVolunteerRepository(infratest.NewTestDB(t))
	ctx := context.Background()

	for _, v := range []db_models.Volunteer{
		{Name: "Amina", Role: "Guide", Status: "active"},
		{Name: "Ben", Role: "Cook", Status: "inactive"},
		{Name: "Chen", Role: "Driver"},
	} {
		v := v
		if err := repo.Create(ctx, &v); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Amina" || got[1].Name != "Chen" {
		t.Fatalf("unexpected volunteers %+v", got)
	}
}

func TestTeamMembersInInsertionOrder(t *testing.T) {
	repo := NewTeamMemberRepository(infratest.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Joseph", "Grace"} {
		if err := repo.Create(ctx, &db_models.TeamMember{Name: name, Role: "Guide"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Joseph" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestDonationTotalsByType(t *testing.T) {
	repo := NewDonationRepository(infratest.NewTestDB(t))
	ctx := context.Background()

	for _, d := range []db_models.Donation{
		{Name: "A", Email: "a@x.io", Amount: 10, DonationType: "one-time"},
		{Name: "B", Email: "b@x.io", Amount: 15.5, DonationType: "one-time"},
		{Name: "C", Email: "c@x.io", Amount: 20, DonationType: "monthly"},
	} {
		d := d
		if err := repo.Create(ctx, &d); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	totals, err := repo.TotalsByType(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 groups, got %+v", totals)
	}
	if totals[1].DonationType != "one-time" || totals[1].Count != 2 || totals[1].Amount != 25.5 {
		t.Fatalf("unexpected one-time total %+v", totals[1])
	}
}
