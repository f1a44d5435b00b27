package attendance

import (
	"testing"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(t *testing.T, date, clock string) *time.Time {
	t.Helper()
	instant, err := businesstime.ToInstant(date, clock)
	require.NoError(t, err)
	return &instant
}

func TestClassify(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		clockIn  *time.Time
		clockOut *time.Time
		want     Status
	}{
		{
			name: "no events is absent",
			want: StatusAbsent,
		},
		{
			name:    "open session is in progress",
			clockIn: clockAt(t, "2024-06-10", "08:30"),
			want:    StatusInProgress,
		},
		{
			// Open session wins over lateness: 09:20 is after the 09:15
			// threshold but there is no clock-out yet.
			name:    "late open session is still in progress",
			clockIn: clockAt(t, "2024-06-10", "09:20"),
			want:    StatusInProgress,
		},
		{
			name:     "late clock in with clock out is late",
			clockIn:  clockAt(t, "2024-06-10", "09:20"),
			clockOut: clockAt(t, "2024-06-10", "17:00"),
			want:     StatusLate,
		},
		{
			name:     "on time closed session is present",
			clockIn:  clockAt(t, "2024-06-10", "08:55"),
			clockOut: clockAt(t, "2024-06-10", "17:00"),
			want:     StatusPresent,
		},
		{
			name:     "clock in exactly at threshold is present",
			clockIn:  clockAt(t, "2024-06-10", "09:15"),
			clockOut: clockAt(t, "2024-06-10", "17:00"),
			want:     StatusPresent,
		},
		{
			name:     "one minute past threshold is late",
			clockIn:  clockAt(t, "2024-06-10", "09:16"),
			clockOut: clockAt(t, "2024-06-10", "17:00"),
			want:     StatusLate,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(day, c.clockIn, c.clockOut, DefaultLateThreshold)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	in := clockAt(t, "2024-06-10", "09:20")
	out := clockAt(t, "2024-06-10", "17:00")

	first := Classify(day, in, out, DefaultLateThreshold)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(day, in, out, DefaultLateThreshold))
	}
}

func TestClassify_CustomThreshold(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	in := clockAt(t, "2024-06-10", "09:20")
	out := clockAt(t, "2024-06-10", "17:00")

	// A looser policy makes the same clock-in on time.
	assert.Equal(t, StatusPresent, Classify(day, in, out, "09:30"))
	assert.Equal(t, StatusLate, Classify(day, in, out, "09:00"))
}

func TestClassify_BadThresholdFallsBack(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	in := clockAt(t, "2024-06-10", "09:20")
	out := clockAt(t, "2024-06-10", "17:00")

	// Unparseable threshold behaves like the default 09:15.
	assert.Equal(t, StatusLate, Classify(day, in, out, "not-a-time"))
}
