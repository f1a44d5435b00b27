package attendance

import (
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
)

// DefaultLateThreshold is the business-local wall-clock time after which a
// clock-in counts as late. A single bakery-wide policy, not per shift.
const DefaultLateThreshold = "09:15"

// Classify derives an attendance status from the day's clock events. The
// rule order is load-bearing:
//
//  1. no clock-in and no clock-out       -> absent
//  2. clock-in without clock-out         -> in-progress
//  3. clock-in after the late threshold  -> late
//  4. otherwise                          -> present
//
// An open session is always in-progress, even when the clock-in was late;
// lateness is only decided once the day is closed out. Pure function of its
// inputs, safe to re-run on every clock write.
func Classify(date time.Time, clockIn, clockOut *time.Time, lateThreshold string) Status {
	if clockIn == nil && clockOut == nil {
		return StatusAbsent
	}
	if clockIn != nil && clockOut == nil {
		return StatusInProgress
	}

	threshold, err := businesstime.CombineClock(date, lateThreshold)
	if err != nil {
		// Misconfigured threshold: fall back to the fixed default rather
		// than misclassifying everyone as late.
		threshold, _ = businesstime.CombineClock(date, DefaultLateThreshold)
	}

	if clockIn != nil && clockIn.After(threshold) {
		return StatusLate
	}
	return StatusPresent
}
