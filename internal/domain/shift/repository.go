package shift

import (
	"context"
)

// ShiftRepository defines data access methods for shift intervals.
type ShiftRepository interface {
	// Create inserts a new shift with both instants populated
	Create(ctx context.Context, shift ShiftInterval) (ShiftInterval, error)

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (ShiftInterval, error)

	// List retrieves shifts with filters and pagination
	List(ctx context.Context, filter ShiftFilter) ([]ShiftInterval, int64, error)

	// UpdateStatus changes the status of a shift; time bounds never change
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete removes a shift (edits are delete-and-recreate)
	Delete(ctx context.Context, id string) error

	// ListEndedScheduled returns scheduled shifts whose end instant has
	// passed, for the absent-marking sweep
	ListEndedScheduled(ctx context.Context) ([]ShiftInterval, error)
}

// MigrationRepository is the narrow surface the legacy backfill needs.
type MigrationRepository interface {
	// ListAll returns every shift row, migrated or not
	ListAll(ctx context.Context) ([]ShiftInterval, error)

	// SaveMigrated writes both instants and clears the four legacy fields
	// on the same row
	SaveMigrated(ctx context.Context, shift ShiftInterval) error
}
