// Command seed wipes the campground table and refills it with
// synthetic sample listings for development.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/camptrail/camptrail/internal/config"
	"github.com/camptrail/camptrail/internal/repository/sqlite"
	"github.com/camptrail/camptrail/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := service.NewSeeder(db.Campgrounds(), db.Users())
	if err := seeder.Run(ctx); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete", "campgrounds", service.SeedCount, "database", cfg.DatabasePath)
}
