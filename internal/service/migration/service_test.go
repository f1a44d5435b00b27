package migration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMigrationRepo keeps rows in memory and applies SaveMigrated the same
// way the SQL repository does: set both instants, clear legacy fields.
type fakeMigrationRepo struct {
	rows     map[string]shift.ShiftInterval
	order    []string
	listErr  error
	failSave map[string]error
	saves    int
}

func newFakeMigrationRepo(rows ...shift.ShiftInterval) *fakeMigrationRepo {
	r := &fakeMigrationRepo{
		rows:     make(map[string]shift.ShiftInterval),
		failSave: make(map[string]error),
	}
	for _, row := range rows {
		r.rows[row.ID] = row
		r.order = append(r.order, row.ID)
	}
	return r
}

func (r *fakeMigrationRepo) ListAll(_ context.Context) ([]shift.ShiftInterval, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]shift.ShiftInterval, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rows[id])
	}
	return out, nil
}

func (r *fakeMigrationRepo) SaveMigrated(_ context.Context, s shift.ShiftInterval) error {
	if err := r.failSave[s.ID]; err != nil {
		return err
	}
	r.saves++
	s.LegacyStartDate = nil
	s.LegacyEndDate = nil
	s.LegacyStartTime = nil
	s.LegacyEndTime = nil
	r.rows[s.ID] = s
	return nil
}

func legacyShift(id, date, startTime, endTime string) shift.ShiftInterval {
	d, _ := time.Parse("2006-01-02", date)
	return shift.ShiftInterval{
		ID:              id,
		EmployeeID:      "emp-001",
		Status:          shift.StatusScheduled,
		LegacyStartDate: &d,
		LegacyEndDate:   &d,
		LegacyStartTime: &startTime,
		LegacyEndTime:   &endTime,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBackfill_Run(t *testing.T) {
	repo := newFakeMigrationRepo(
		legacyShift("s1", "2024-03-01", "08:00", "17:00"),
		legacyShift("s2", "2024-03-02", "06:00", "14:00"),
	)
	b := NewBackfill(repo, testLogger())

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Migrated: 2, Skipped: 0}, summary)

	// 08:00 business-local on 2024-03-01 is 07:00 UTC.
	migrated := repo.rows["s1"]
	assert.Equal(t, time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC), migrated.StartInstant)
	assert.Equal(t, time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC), migrated.EndInstant)
	assert.Nil(t, migrated.LegacyStartDate)
	assert.Nil(t, migrated.LegacyEndTime)
}

func TestBackfill_SecondRunIsNoop(t *testing.T) {
	repo := newFakeMigrationRepo(
		legacyShift("s1", "2024-03-01", "08:00", "17:00"),
	)
	b := NewBackfill(repo, testLogger())

	first, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Migrated: 1, Skipped: 0}, first)

	after := repo.rows["s1"]

	second, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Migrated: 0, Skipped: 1}, second)
	assert.Equal(t, 1, repo.saves, "migrated rows must not be rewritten")
	assert.Equal(t, after, repo.rows["s1"])
}

func TestBackfill_SkipsIncompleteLegacyRows(t *testing.T) {
	incomplete := legacyShift("s1", "2024-03-01", "08:00", "17:00")
	incomplete.LegacyEndTime = nil

	repo := newFakeMigrationRepo(
		incomplete,
		legacyShift("s2", "2024-03-02", "06:00", "14:00"),
	)
	b := NewBackfill(repo, testLogger())

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Migrated: 1, Skipped: 1}, summary)

	// The incomplete row is left untouched for manual review.
	assert.True(t, repo.rows["s1"].StartInstant.IsZero())
	assert.NotNil(t, repo.rows["s1"].LegacyStartDate)
}

func TestBackfill_SkipsUnparseableLegacyTimes(t *testing.T) {
	bad := legacyShift("s1", "2024-03-01", "8 o'clock", "17:00")
	repo := newFakeMigrationRepo(bad)
	b := NewBackfill(repo, testLogger())

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Migrated: 0, Skipped: 1}, summary)
	assert.Zero(t, repo.saves)
}

func TestBackfill_ContinuesPastWriteFailure(t *testing.T) {
	repo := newFakeMigrationRepo(
		legacyShift("s1", "2024-03-01", "08:00", "17:00"),
		legacyShift("s2", "2024-03-02", "06:00", "14:00"),
	)
	repo.failSave["s1"] = errors.New("connection reset")
	b := NewBackfill(repo, testLogger())

	summary, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Migrated: 1, Skipped: 1}, summary)
	assert.False(t, repo.rows["s2"].StartInstant.IsZero())
}

func TestBackfill_ListFailureIsFatal(t *testing.T) {
	repo := newFakeMigrationRepo()
	repo.listErr = errors.New("relation does not exist")
	b := NewBackfill(repo, testLogger())

	_, err := b.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load shift records")
}
