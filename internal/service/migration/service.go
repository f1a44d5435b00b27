// Package migration holds the one-time backfill that rewrites legacy split
// date/time shift fields into the canonical two-instant representation. The
// transform is destructive (legacy fields are cleared on success) and one-way,
// so correctness leans on the skip rules: already-migrated and incomplete rows
// are never touched, which also makes re-runs safe.
package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
)

// Summary reports the outcome of a backfill run.
type Summary struct {
	Migrated int
	Skipped  int
}

type Backfill struct {
	repo   shift.MigrationRepository
	logger *slog.Logger
}

func NewBackfill(repo shift.MigrationRepository, logger *slog.Logger) *Backfill {
	return &Backfill{repo: repo, logger: logger}
}

// Run processes every shift row sequentially. A row is skipped when it is
// already migrated or any legacy field is missing (never guess missing
// data). A failed write on one row is logged and counted as skipped; the
// run continues. Only the initial listing failure is fatal.
func (b *Backfill) Run(ctx context.Context) (Summary, error) {
	shifts, err := b.repo.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load shift records: %w", err)
	}

	var summary Summary
	for _, s := range shifts {
		if s.IsMigrated() {
			summary.Skipped++
			continue
		}
		if !s.HasCompleteLegacyFields() {
			b.logger.Warn("skipping shift with incomplete legacy fields", "shift_id", s.ID)
			summary.Skipped++
			continue
		}

		startInstant, err := businesstime.ToInstant(
			s.LegacyStartDate.Format(businesstime.DateLayout), *s.LegacyStartTime)
		if err != nil {
			b.logger.Warn("skipping shift with unparseable legacy start", "shift_id", s.ID, "error", err)
			summary.Skipped++
			continue
		}
		endInstant, err := businesstime.ToInstant(
			s.LegacyEndDate.Format(businesstime.DateLayout), *s.LegacyEndTime)
		if err != nil {
			b.logger.Warn("skipping shift with unparseable legacy end", "shift_id", s.ID, "error", err)
			summary.Skipped++
			continue
		}

		s.StartInstant = startInstant
		s.EndInstant = endInstant

		if err := b.repo.SaveMigrated(ctx, s); err != nil {
			// Partial-failure tolerant: one bad row does not abort the run.
			b.logger.Error("failed to persist migrated shift", "shift_id", s.ID, "error", err)
			summary.Skipped++
			continue
		}
		summary.Migrated++
	}

	b.logger.Info("shift backfill finished",
		"migrated", summary.Migrated,
		"skipped", summary.Skipped,
		"total", len(shifts),
	)
	return summary, nil
}
