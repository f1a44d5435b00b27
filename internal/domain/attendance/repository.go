package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// working day; nil when no record exists yet
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// Update rewrites clock events, status and notes on an existing record
	Update(ctx context.Context, record AttendanceRecord) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, int64, error)
}
