package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.start_instant, s.end_instant, s.location, s.notes,
	s.status, s.start_date, s.end_date, s.start_time, s.end_time,
	s.created_at, s.updated_at, e.name
`

func scanShift(row pgx.Row) (shift.ShiftInterval, error) {
	var s shift.ShiftInterval
	var startInstant, endInstant *time.Time
	err := row.Scan(
		&s.ID, &s.EmployeeID, &startInstant, &endInstant, &s.Location, &s.Notes,
		&s.Status, &s.LegacyStartDate, &s.LegacyEndDate, &s.LegacyStartTime, &s.LegacyEndTime,
		&s.CreatedAt, &s.UpdatedAt, &s.EmployeeName,
	)
	if err != nil {
		return shift.ShiftInterval{}, err
	}
	if startInstant != nil {
		s.StartInstant = startInstant.UTC()
	}
	if endInstant != nil {
		s.EndInstant = endInstant.UTC()
	}
	return s, nil
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.ShiftInterval) (shift.ShiftInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, employee_id, start_instant, end_instant, location, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	newShift.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newShift.ID,
		newShift.EmployeeID,
		newShift.StartInstant,
		newShift.EndInstant,
		newShift.Location,
		newShift.Notes,
		newShift.Status,
	).Scan(&newShift.ID, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return shift.ShiftInterval{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.ShiftInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftInterval{}, shift.ErrShiftNotFound
		}
		return shift.ShiftInterval{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftInterval, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("s.start_instant >= $%d::date", argPos))
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("s.start_instant < ($%d::date + interval '1 day')", argPos))
		args = append(args, *filter.DateTo)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM shifts s WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE ` + where + `
		ORDER BY s.start_instant DESC NULLS LAST, s.created_at DESC
		LIMIT ` + fmt.Sprintf("$%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.ShiftInterval
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate shift rows: %w", err)
	}

	return shifts, total, nil
}

// UpdateStatus implements shift.ShiftRepository.
func (r *shiftRepository) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListEndedScheduled implements shift.ShiftRepository.
func (r *shiftRepository) ListEndedScheduled(ctx context.Context) ([]shift.ShiftInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.status = $1
		  AND s.end_instant IS NOT NULL
		  AND s.end_instant < NOW()
	`

	rows, err := q.Query(ctx, query, shift.StatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("failed to list ended scheduled shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.ShiftInterval
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}

	return shifts, nil
}
