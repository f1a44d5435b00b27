package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("already clocked in for this date")
	ErrNotClockedIn       = errors.New("no clock-in recorded for this date")
	ErrAlreadyClockedOut  = errors.New("already clocked out for this date")
	ErrClockOutBeforeIn   = errors.New("clock out must be after clock in")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
