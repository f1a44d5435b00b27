package leave

import "time"

type Type string

const (
	TypeVacation  Type = "vacation"
	TypeSick      Type = "sick"
	TypePersonal  Type = "personal"
	TypeEmergency Type = "emergency"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest covers an inclusive range of calendar days. Days is derived
// from the range at creation time. Status starts pending and is terminal
// once decided.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Status     Status
	Notes      *string
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
