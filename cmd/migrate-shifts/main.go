// migrate-shifts is the one-shot backfill that converts legacy split
// date/time shift rows to the absolute-instant representation. Run it once
// against a live database; re-running is harmless because migrated rows are
// skipped. Exits 0 on completion, 1 on a fatal connectivity error.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/config"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/repository/postgresql"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/service/migration"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("job", "migrate-shifts"),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	backfill := migration.NewBackfill(postgresql.NewShiftMigrationRepository(db), logger)

	summary, err := backfill.Run(context.Background())
	if err != nil {
		logger.Error("backfill aborted", "error", err)
		os.Exit(1)
	}

	logger.Info("backfill complete", "migrated", summary.Migrated, "skipped", summary.Skipped)
}
