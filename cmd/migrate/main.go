package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/cmlabs-hris/attendance-engine/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		slog.Error("Error listing migrations", "error", err)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, file := range files {
		migration, err := os.ReadFile(file)
		if err != nil {
			slog.Error("Error reading migration file", "file", file, "error", err)
			os.Exit(1)
		}

		if _, err := pool.Exec(ctx, string(migration)); err != nil {
			slog.Error("Error executing migration", "file", file, "error", err)
			os.Exit(1)
		}
		slog.Info("Applied migration", "file", file)
	}

	slog.Info("Migration completed successfully", "count", len(files))
}
