package businesstime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstant(t *testing.T) {
	instant, err := ToInstant("2024-03-01", "08:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), instant)

	instant, err = ToInstant("2024-03-01", "17:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC), instant)

	// Midnight local rolls back to the previous UTC day
	instant, err = ToInstant("2024-03-01", "00:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC), instant)
}

func TestToInstant_Invalid(t *testing.T) {
	_, err := ToInstant("01-03-2024", "08:00")
	assert.Error(t, err)

	_, err = ToInstant("2024-03-01", "8am")
	assert.Error(t, err)

	_, err = ToInstant("2024-03-01", "25:00")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		date  string
		clock string
	}{
		{"2024-03-01", "08:00"},
		{"2024-03-01", "00:00"},
		{"2024-12-31", "23:59"},
		{"2024-02-29", "12:30"},
		{"2025-01-01", "00:30"},
	}
	for _, c := range cases {
		instant, err := ToInstant(c.date, c.clock)
		require.NoError(t, err)

		date, clock := FromInstant(instant)
		assert.Equal(t, c.date, date, "date round trip for %s %s", c.date, c.clock)
		assert.Equal(t, c.clock, clock, "clock round trip for %s %s", c.date, c.clock)
	}
}

func TestToday(t *testing.T) {
	// 23:30 UTC is already the next day in the business timezone
	now := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), Today(now))

	now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestCombineClock(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	instant, err := CombineClock(day, "09:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 8, 15, 0, 0, time.UTC), instant)
}
