package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"safari/internal/config"
	"safari/internal/infra"
	"safari/internal/repositories"
	"safari/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "import itineraries, team members and fleet vehicles from an .xlsx workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to the workbook",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit non-zero when any row is skipped",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Load()
	log, err := infra.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := infra.OpenDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, log)

	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	importer := seed.NewImporter(
		repositories.NewItineraryRepository(db),
		repositories.NewTeamMemberRepository(db),
		repositories.NewFleetVehicleRepository(db),
		log.Named("seed"),
	)

	reports, err := importer.ImportFile(c.Context, c.String("file"))
	if err != nil {
		return err
	}

	skipped := 0
	for _, r := range reports {
		for _, p := range r.Problems {
			log.Warn("row skipped", zap.String("problem", p))
		}
		skipped += r.Skipped
	}
	if skipped > 0 && c.Bool("strict") {
		return cli.Exit(fmt.Sprintf("%d rows skipped", skipped), 2)
	}
	return nil
}
