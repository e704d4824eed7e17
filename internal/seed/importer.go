// Package seed loads catalog data (itineraries, team members and fleet
// vehicles) from an .xlsx workbook.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin/binding"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
	"safari/internal/services"
	"safari/pkg/utils"
)

const (
	SheetItineraries   = "Itineraries"
	SheetTeamMembers   = "TeamMembers"
	SheetFleetVehicles = "FleetVehicles"
)

// Report summarises one sheet. Problems name the spreadsheet row.
type Report struct {
	Sheet    string
	Imported int
	Skipped  int
	Missing  bool
	Problems []string
}

type Importer struct {
	itineraries repositories.ItineraryRepository
	team        repositories.TeamMemberRepository
	fleet       repositories.FleetVehicleRepository
	log         *zap.Logger
}

func NewImporter(
	itineraries repositories.ItineraryRepository,
	team repositories.TeamMemberRepository,
	fleet repositories.FleetVehicleRepository,
	log *zap.Logger,
) *Importer {
	utils.RegisterJSONFieldNames()
	return &Importer{itineraries: itineraries, team: team, fleet: fleet, log: log}
}

func (im *Importer) ImportFile(ctx context.Context, path string) ([]Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return im.Import(ctx, f)
}

func (im *Importer) ImportReader(ctx context.Context, r io.Reader) ([]Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return im.Import(ctx, f)
}

// Import reads every known sheet present in f. Invalid rows are skipped
// and reported; a database failure stops the import.
func (im *Importer) Import(ctx context.Context, f *excelize.File) ([]Report, error) {
	sheets := []struct {
		name string
		load func(context.Context, *sheetRow) error
	}{
		{SheetItineraries, im.importItinerary},
		{SheetTeamMembers, im.importTeamMember},
		{SheetFleetVehicles, im.importFleetVehicle},
	}

	reports := make([]Report, 0, len(sheets))
	for _, s := range sheets {
		report, err := im.importSheet(ctx, f, s.name, s.load)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
		im.log.Info("sheet imported",
			zap.String("sheet", report.Sheet),
			zap.Int("imported", report.Imported),
			zap.Int("skipped", report.Skipped),
			zap.Bool("missing", report.Missing),
		)
	}
	return reports, nil
}

func (im *Importer) importSheet(ctx context.Context, f *excelize.File, sheet string, load func(context.Context, *sheetRow) error) (Report, error) {
	report := Report{Sheet: sheet}
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		report.Missing = true
		return report, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return report, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return report, nil
	}

	header := newHeader(rows[0])
	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		row := &sheetRow{header: header, cells: cells, line: i + 2}
		err := load(ctx, row)
		switch {
		case err == nil:
			report.Imported++
		case isRowProblem(err):
			report.Skipped++
			report.Problems = append(report.Problems, fmt.Sprintf("%s row %d: %v", sheet, row.line, err))
		default:
			return report, fmt.Errorf("%s row %d: %w", sheet, row.line, err)
		}
	}
	return report, nil
}

func (im *Importer) importItinerary(ctx context.Context, row *sheetRow) error {
	req := request_models.CreateItineraryRequest{
		Title:           row.str("title"),
		Description:     row.str("description"),
		Duration:        row.int("duration"),
		Location:        row.str("location"),
		Country:         row.str("country"),
		Highlights:      row.list("highlights"),
		DayByDay:        row.days("dayByDay"),
		Price:           row.float("price"),
		Category:        row.str("category"),
		PackageType:     row.str("packageType"),
		DifficultyLevel: row.str("difficultyLevel"),
		ImageURL:        row.str("imageUrl"),
	}
	if err := validateRow(row, &req); err != nil {
		return err
	}
	return im.itineraries.Create(ctx, services.NewItineraryFromRequest(req))
}

func (im *Importer) importTeamMember(ctx context.Context, row *sheetRow) error {
	req := request_models.CreateTeamMemberRequest{
		Name:              row.str("name"),
		Role:              row.str("role"),
		Bio:               row.str("bio"),
		ImageURL:          row.str("imageUrl"),
		Specialty:         row.str("specialty"),
		YearsOfExperience: row.intPtr("yearsOfExperience"),
	}
	if err := validateRow(row, &req); err != nil {
		return err
	}
	return im.team.Create(ctx, services.NewTeamMemberFromRequest(req))
}

func (im *Importer) importFleetVehicle(ctx context.Context, row *sheetRow) error {
	req := request_models.CreateFleetVehicleRequest{
		Name:        row.str("name"),
		Description: row.str("description"),
		Capacity:    row.int("capacity"),
		Features:    row.list("features"),
		ImageURL:    row.str("imageUrl"),
		Type:        row.str("type"),
		Available:   row.boolPtr("available"),
	}
	if err := validateRow(row, &req); err != nil {
		return err
	}
	return im.fleet.Create(ctx, services.NewFleetVehicleFromRequest(req))
}

// validateRow applies the same binding rules as the HTTP API, after any
// cell parse errors.
func validateRow(row *sheetRow, req any) error {
	if err := row.err(); err != nil {
		return err
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return utils.ToValidationError(err)
	}
	return nil
}

func isRowProblem(err error) bool {
	var verr *utils.ValidationError
	var cerr *cellError
	return errors.As(err, &verr) || errors.As(err, &cerr)
}
