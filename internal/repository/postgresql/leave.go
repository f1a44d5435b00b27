package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/leave"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.type, l.start_date, l.end_date, l.days,
	l.status, l.notes, l.decided_by, l.decided_at, l.created_at, l.updated_at, e.name
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Days,
		&req.Status, &req.Notes, &req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, days, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.Days,
		request.Status,
		request.Notes,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, notes = $3, decided_by = $4, decided_at = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.Status,
		request.Notes,
		request.DecidedBy,
		request.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("l.type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + where + `
		ORDER BY l.created_at DESC
		LIMIT ` + fmt.Sprintf("$%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave request rows: %w", err)
	}

	return requests, total, nil
}
