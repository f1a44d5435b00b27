package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/attendance"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
)

// AttendanceJobs owns the absent-marking sweep: scheduled shifts whose end
// instant has passed with no clock events get an absent attendance row, so
// the admin day view never shows a silent gap.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	shiftRepo      shift.ShiftRepository
	logger         *slog.Logger
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo shift.ShiftRepository,
	logger *slog.Logger,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		logger:         logger,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates absent records for ended scheduled shifts with
// no attendance row. One bad shift does not stop the sweep.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	ended, err := j.shiftRepo.ListEndedScheduled(ctx)
	if err != nil {
		return fmt.Errorf("failed to list ended scheduled shifts: %w", err)
	}

	var marked int
	for _, s := range ended {
		date, _ := businesstime.FromInstant(s.StartInstant)
		day, err := time.Parse(businesstime.DateLayout, date)
		if err != nil {
			continue
		}

		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, s.EmployeeID, day)
		if err != nil {
			j.logger.Error("absent sweep: attendance lookup failed", "shift_id", s.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		shiftID := s.ID
		record := attendance.AttendanceRecord{
			EmployeeID: s.EmployeeID,
			Date:       day,
			ShiftID:    &shiftID,
			Status:     attendance.StatusAbsent,
		}
		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			j.logger.Error("absent sweep: failed to create absent record", "shift_id", s.ID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		j.logger.Info("absent sweep marked employees absent", "count", marked)
	}
	return nil
}
