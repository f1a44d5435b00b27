package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusAbsent     Status = "absent"
	StatusInProgress Status = "in-progress"
)

// AttendanceRecord tracks one employee's clock events for one working day.
// Date is the business-local calendar day; ClockIn/ClockOut are absolute UTC
// instants. Status is derived, recomputed whenever either instant changes.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ShiftID    *string
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
