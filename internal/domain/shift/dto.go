package shift

import (
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Location   *string `json:"location,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Validate collects every field-level problem so the admin form can render
// them all at once. Interval ordering is checked later by the builder, after
// normalization.
func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start time is required",
		})
	} else if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start time must be in HH:mm format",
		})
	}

	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end time is required",
		})
	} else if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateShiftStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	allowed := []string{
		string(StatusScheduled),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusCancelled),
	}
	if !validator.IsInSlice(r.Status, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of scheduled, in-progress, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftFilter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	StartInstant string  `json:"start_instant,omitempty"`
	EndInstant   string  `json:"end_instant,omitempty"`
	Location     *string `json:"location,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
}
