package leave

import (
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
)

// MaxLeaveDays caps a single request's inclusive span.
const MaxLeaveDays = 30

// CalculateDays validates a leave date range against "now" and returns the
// parsed bounds plus the inclusive day count: a single-day request is 1 day.
// Every violation is reported as a field-level validation error.
func CalculateDays(startDate, endDate string, now time.Time) (start, end time.Time, days int, err error) {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be in YYYY-MM-DD format",
		})
	}
	if !startOK || !endOK {
		return time.Time{}, time.Time{}, 0, errs
	}

	if end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date cannot be before start date",
		})
		return time.Time{}, time.Time{}, 0, errs
	}

	// No retroactive leave: the start day must be today or later in the
	// business timezone.
	if start.Before(businesstime.Today(now)) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date cannot be in the past",
		})
	}

	days = int(end.Sub(start).Hours()/24) + 1
	if days > MaxLeaveDays {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "leave cannot exceed 30 days",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, 0, errs
	}

	return start, end, days, nil
}
