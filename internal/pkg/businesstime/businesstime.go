// Package businesstime converts wall-clock date/time input, understood to be
// in the bakery's fixed business timezone, to absolute UTC instants and back.
//
// The business timezone is Africa/Lagos (UTC+1). Lagos does not observe
// daylight saving time, so the offset is modelled as a single constant rather
// than a tzdata lookup. If the underlying zone ever adopts DST, results for
// ambiguous periods are undefined; switching to time.LoadLocation is a
// one-line change localized to this package.
package businesstime

import (
	"fmt"
	"time"
)

const (
	// ZoneName is the IANA name of the business timezone. Kept for display
	// and documentation only; conversion uses the fixed offset below.
	ZoneName = "Africa/Lagos"

	// Offset is the fixed business-timezone offset from UTC.
	Offset = 1 * time.Hour

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Location is the fixed-offset location used to render instants in
// business-local time. Deliberately independent of the machine timezone.
var Location = time.FixedZone(ZoneName, int(Offset/time.Second))

// ToInstant combines a calendar date ("2006-01-02") and a wall-clock time
// ("15:04"), both interpreted in the business timezone, into a UTC instant.
func ToInstant(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	c, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	local := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
	return local.Add(-Offset), nil
}

// FromInstant is the inverse of ToInstant: it renders a UTC instant as a
// (date, wall-clock) pair in the business timezone.
func FromInstant(instant time.Time) (date, clock string) {
	local := instant.In(Location)
	return local.Format(DateLayout), local.Format(TimeLayout)
}

// Today returns the current calendar date in the business timezone,
// truncated to midnight UTC so it compares cleanly against parsed dates.
func Today(now time.Time) time.Time {
	local := now.In(Location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// CombineClock anchors a wall-clock time ("15:04") on the given calendar
// date and returns the corresponding UTC instant. Used when a clock event
// arrives as a bare time for a known attendance date.
func CombineClock(date time.Time, clock string) (time.Time, error) {
	return ToInstant(date.Format(DateLayout), clock)
}
