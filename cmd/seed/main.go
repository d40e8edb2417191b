package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/seed"

	"github.com/fatih/color"
)

const usage = `usage: portfolio-seed [--config path] <command>

commands:
  populate        create fixture records that do not exist yet
  upload-images   attach fixture image files to existing records
`

func main() {
	flag.String("config", "", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx := context.Background()

	fixture, err := seed.LoadFixture(cfg.Seed.FixturePath)
	if err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}

	application := app.New(ctx, log, cfg)
	defer application.Stop()

	seeder := seed.New(application.Content, os.Stdout)

	var report seed.Report
	switch cmd := flag.Arg(0); cmd {
	case "populate":
		fmt.Println("Populating portfolio data...")
		report, err = seeder.Populate(ctx, fixture)
	case "upload-images":
		report, err = seeder.UploadImages(ctx, fixture, cfg.Seed.AssetsDir)
	default:
		color.Red("✗ unknown command %q", cmd)
		flag.Usage()
		application.Stop()
		os.Exit(2)
	}

	if err != nil {
		color.Red("✗ %v", err)
		application.Stop()
		os.Exit(1)
	}

	color.Green("\n✓ Done: %d created, %d skipped, %d uploaded, %d warnings",
		report.Created, report.Skipped, report.Uploaded, report.Warnings)
}
