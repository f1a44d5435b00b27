package response

import (
	"errors"
	"net/http"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/attendance"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/auth"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/employee"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/leave"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidStatusChange):
		Conflict(w, "Shift status change not allowed")
	case errors.Is(err, shift.ErrShiftAlreadyFinalized):
		Conflict(w, "Shift is already completed or cancelled")

	// Attendance errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this date")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for this date")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No clock-in recorded for this date", nil)
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock out must be after clock in", nil)

	// Leave errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
