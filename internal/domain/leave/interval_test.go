package leave

import (
	"testing"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference instant: 2024-06-10 10:00 UTC, which is 2024-06-10 in the
// business timezone.
var testNow = time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

func TestCalculateDays(t *testing.T) {
	cases := []struct {
		name      string
		startDate string
		endDate   string
		wantDays  int
	}{
		{"single day counts as one", "2024-06-12", "2024-06-12", 1},
		{"inclusive span", "2024-06-12", "2024-06-16", 5},
		{"starting today is allowed", "2024-06-10", "2024-06-10", 1},
		{"maximum span", "2024-06-11", "2024-07-10", 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end, days, err := CalculateDays(c.startDate, c.endDate, testNow)
			require.NoError(t, err)
			assert.Equal(t, c.wantDays, days)
			assert.Equal(t, c.startDate, start.Format("2006-01-02"))
			assert.Equal(t, c.endDate, end.Format("2006-01-02"))
		})
	}
}

func TestCalculateDays_Errors(t *testing.T) {
	cases := []struct {
		name      string
		startDate string
		endDate   string
		wantField string
	}{
		{"malformed start date", "12-06-2024", "2024-06-16", "start_date"},
		{"malformed end date", "2024-06-12", "junk", "end_date"},
		{"end before start", "2024-06-16", "2024-06-12", "end_date"},
		{"start in the past", "2024-06-09", "2024-06-12", "start_date"},
		{"span over thirty days", "2024-06-11", "2024-07-11", "end_date"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, days, err := CalculateDays(c.startDate, c.endDate, testNow)
			require.Error(t, err)
			assert.Zero(t, days)

			verrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			fields := make([]string, 0, len(verrs))
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			assert.Contains(t, fields, c.wantField)
		})
	}
}

func TestCalculateDays_CollectsMultipleErrors(t *testing.T) {
	_, _, _, err := CalculateDays("bad", "worse", testNow)
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Len(t, verrs, 2)
}
