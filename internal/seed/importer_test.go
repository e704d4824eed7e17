package seed

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"safari/internal/infra/infratest"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
)

type sheetData struct {
	name string
	rows [][]any
}

func buildWorkbook(t *testing.T, sheets ...sheetData) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("new sheet %s: %v", s.name, err)
		}
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		t.Fatalf("delete default sheet: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

type fixture struct {
	importer    *Importer
	itineraries repositories.ItineraryRepository
	team        repositories.TeamMemberRepository
	fleet       repositories.FleetVehicleRepository
}

func newFixture(t *testing.T) fixture {
	db := infratest.NewTestDB(t)
	fx := fixture{
		itineraries: repositories.NewItineraryRepository(db),
		team:        repositories.NewTeamMemberRepository(db),
		fleet:       repositories.NewFleetVehicleRepository(db),
	}
	fx.importer = NewImporter(fx.itineraries, fx.team, fx.fleet, zap.NewNop())
	return fx
}

func reportFor(reports []Report, sheet string) Report {
	for _, r := range reports {
		if r.Sheet == sheet {
			return r
		}
	}
	return Report{}
}

func TestImportItineraries(t *testing.T) {
	fx := newFixture(t)
	wb := buildWorkbook(t, sheetData{
		name: SheetItineraries,
		rows: [][]any{
			{"Title", "Description", "Duration", "Location", "Country", "Highlights", "DayByDay", "Price", "Category"},
			{"Serengeti Explorer", "Migration season", 5, "Serengeti", "Tanzania", "Big five; River crossing ;", "Day 1: Arrive Arusha | Day 2: Central Serengeti", 2400.5, "wildlife"},
			{},
			{"Ok", "Title below three characters", 2, "Amboseli", "Kenya", "", "", 100, "wildlife"},
			{"Gorilla Trek", "Bwindi forest", "three", "Bwindi", "Uganda", "", "", 900, "primates"},
		},
	})

	reports, err := fx.importer.ImportReader(context.Background(), wb)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	r := reportFor(reports, SheetItineraries)
	if r.Imported != 1 || r.Skipped != 2 {
		t.Fatalf("expected 1 imported and 2 skipped, got %+v", r)
	}
	if !strings.Contains(r.Problems[0], "row 4") || !strings.Contains(r.Problems[0], "title") {
		t.Fatalf("unexpected first problem %q", r.Problems[0])
	}
	if !strings.Contains(r.Problems[1], "duration") {
		t.Fatalf("unexpected second problem %q", r.Problems[1])
	}

	list, err := fx.itineraries.List(context.Background(), request_models.ItineraryFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one itinerary, got %d", len(list))
	}
	it := list[0]
	if len(it.Highlights) != 2 || it.Highlights[1] != "River crossing" {
		t.Fatalf("unexpected highlights %v", it.Highlights)
	}
	days := it.DayByDay.Data()
	if days["Day 2"] != "Central Serengeti" || len(days) != 2 {
		t.Fatalf("unexpected dayByDay %v", days)
	}
	if it.Price != 2400.5 || it.AverageRating != 0 || it.TotalReviews != 0 {
		t.Fatalf("unexpected itinerary %+v", it)
	}
}

func TestImportTeamAndFleet(t *testing.T) {
	fx := newFixture(t)
	wb := buildWorkbook(t,
		sheetData{
			name: SheetTeamMembers,
			rows: [][]any{
				{"name", "role", "yearsOfExperience"},
				{"Amina", "Lead guide", 12},
				{"Joseph", "Driver", ""},
				{"Kim", "", 3},
			},
		},
		sheetData{
			name: SheetFleetVehicles,
			rows: [][]any{
				{"name", "capacity", "features", "available"},
				{"Land Cruiser", 6, "Pop-up roof; Fridge", "yes"},
				{"Old Rover", 4, "", "no"},
				{"Minivan", 7, "", "maybe"},
			},
		},
	)

	reports, err := fx.importer.ImportReader(context.Background(), wb)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if r := reportFor(reports, SheetItineraries); !r.Missing {
		t.Fatalf("itineraries sheet should be reported missing, got %+v", r)
	}
	if r := reportFor(reports, SheetTeamMembers); r.Imported != 2 || r.Skipped != 1 {
		t.Fatalf("unexpected team report %+v", r)
	}
	if r := reportFor(reports, SheetFleetVehicles); r.Imported != 2 || r.Skipped != 1 {
		t.Fatalf("unexpected fleet report %+v", r)
	}

	team, err := fx.team.List(context.Background())
	if err != nil {
		t.Fatalf("list team: %v", err)
	}
	if len(team) != 2 || team[0].Name != "Amina" {
		t.Fatalf("unexpected team %+v", team)
	}

	fleet, err := fx.fleet.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list fleet: %v", err)
	}
	if len(fleet) != 1 || fleet[0].Name != "Land Cruiser" || len(fleet[0].Features) != 2 {
		t.Fatalf("only the available vehicle should be listed, got %+v", fleet)
	}
}

func TestDaysRejectsMalformedEntries(t *testing.T) {
	row := &sheetRow{header: newHeader([]string{"dayByDay"}), cells: []string{"Day 1 arrive"}}
	row.days("dayByDay")
	if row.err() == nil {
		t.Fatal("expected an error for an entry without a colon")
	}
}
