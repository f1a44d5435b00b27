package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
)

type shiftMigrationRepository struct {
	db *database.DB
}

func NewShiftMigrationRepository(db *database.DB) shift.MigrationRepository {
	return &shiftMigrationRepository{db: db}
}

// ListAll implements shift.MigrationRepository. No employee join: the
// backfill must see every row, including ones whose employee is gone.
func (r *shiftMigrationRepository) ListAll(ctx context.Context) ([]shift.ShiftInterval, error) {
	query := `
		SELECT id, employee_id, start_instant, end_instant, location, notes,
			   status, start_date, end_date, start_time, end_time,
			   created_at, updated_at
		FROM shifts
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.ShiftInterval
	for rows.Next() {
		var s shift.ShiftInterval
		var startInstant, endInstant *time.Time
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &startInstant, &endInstant, &s.Location, &s.Notes,
			&s.Status, &s.LegacyStartDate, &s.LegacyEndDate, &s.LegacyStartTime, &s.LegacyEndTime,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		if startInstant != nil {
			s.StartInstant = startInstant.UTC()
		}
		if endInstant != nil {
			s.EndInstant = endInstant.UTC()
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}

	return shifts, nil
}

// SaveMigrated implements shift.MigrationRepository. Writing the instants
// and clearing the legacy fields happens in one statement so a row is never
// left in a meaningful mixed state.
func (r *shiftMigrationRepository) SaveMigrated(ctx context.Context, s shift.ShiftInterval) error {
	query := `
		UPDATE shifts
		SET start_instant = $2,
			end_instant = $3,
			start_date = NULL,
			end_date = NULL,
			start_time = NULL,
			end_time = NULL,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, s.ID, s.StartInstant, s.EndInstant)
	if err != nil {
		return fmt.Errorf("failed to save migrated shift %s: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
