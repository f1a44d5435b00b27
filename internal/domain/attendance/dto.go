package attendance

import (
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    string  `json:"clock_in"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
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

	if validator.IsEmpty(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock in time is required",
		})
	} else if _, ok := validator.IsValidClockTime(r.ClockIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock in time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockOut   string  `json:"clock_out"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
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

	if validator.IsEmpty(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock out time is required",
		})
	} else if _, ok := validator.IsValidClockTime(r.ClockOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock out time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
	Status     *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
}
