package shift

import "errors"

// Shift domain errors
var (
	ErrShiftNotFound         = errors.New("shift not found")
	ErrInvalidStatusChange   = errors.New("shift status change not allowed")
	ErrShiftAlreadyFinalized = errors.New("shift is already completed or cancelled")
)
