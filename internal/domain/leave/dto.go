package leave

import (
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Notes      *string `json:"notes,omitempty"`
}

// Validate checks field presence and the leave type; date-range rules live
// in CalculateDays so callers get both sets of errors together.
func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee is required",
		})
	}

	allowed := []string{
		string(TypeVacation),
		string(TypeSick),
		string(TypePersonal),
		string(TypeEmergency),
	}
	if !validator.IsInSlice(r.Type, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of vacation, sick, personal, emergency",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date is required",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequestRequest struct {
	ID        string  `json:"-"`
	DecidedBy string  `json:"-"`
	Notes     *string `json:"notes,omitempty"`
}

type LeaveFilter struct {
	EmployeeID *string
	Status     *string
	Type       *string
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}
