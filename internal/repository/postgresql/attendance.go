package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/attendance"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.shift_id, a.clock_in, a.clock_out,
	a.status, a.notes, a.created_at, a.updated_at, e.name
`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ShiftID, &rec.ClockIn, &rec.ClockOut,
		&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	if rec.ClockIn != nil {
		in := rec.ClockIn.UTC()
		rec.ClockIn = &in
	}
	if rec.ClockOut != nil {
		out := rec.ClockOut.UTC()
		rec.ClockOut = &out
	}
	return rec, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, shift_id, clock_in, clock_out, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	record.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.ShiftID,
		record.ClockIn,
		record.ClockOut,
		record.Status,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record yet for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $2, clock_out = $3, status = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.ClockIn,
		record.ClockOut,
		record.Status,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d::date", argPos))
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_records a WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT ` + fmt.Sprintf("$%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, total, nil
}
