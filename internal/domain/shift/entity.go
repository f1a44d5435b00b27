package shift

import "time"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ShiftInterval is the canonical shift representation: both bounds are
// absolute UTC instants. Time bounds are immutable after creation; edits go
// through delete-and-recreate, only Status is ever mutated in place.
type ShiftInterval struct {
	ID           string
	EmployeeID   string
	StartInstant time.Time
	EndInstant   time.Time
	Location     *string
	Notes        *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Legacy split fields, present only on rows the backfill has not yet
	// rewritten. Cleared once both instants are populated.
	LegacyStartDate *time.Time
	LegacyEndDate   *time.Time
	LegacyStartTime *string
	LegacyEndTime   *string

	// DTO
	EmployeeName *string
}

// IsMigrated reports whether the row already carries the instant form.
func (s ShiftInterval) IsMigrated() bool {
	return !s.StartInstant.IsZero()
}

// HasCompleteLegacyFields reports whether all four legacy fields are present.
func (s ShiftInterval) HasCompleteLegacyFields() bool {
	return s.LegacyStartDate != nil && s.LegacyEndDate != nil &&
		s.LegacyStartTime != nil && s.LegacyEndTime != nil
}

// Finalized reports whether the shift reached a terminal status.
func (s ShiftInterval) Finalized() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}

// CanTransitionTo reports whether a status change is allowed. Scheduled
// shifts start or get cancelled; in-progress shifts complete or get
// cancelled; completed and cancelled are terminal.
func (s ShiftInterval) CanTransitionTo(next Status) bool {
	switch s.Status {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
