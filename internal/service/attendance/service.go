package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/attendance"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/employee"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	lateThreshold string
	inTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	lateThreshold string,
) *AttendanceServiceImpl {
	if _, ok := validator.IsValidClockTime(lateThreshold); !ok {
		lateThreshold = attendance.DefaultLateThreshold
	}
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		lateThreshold:        lateThreshold,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ClockIn implements attendance.AttendanceService. Creates the day's record
// on first clock-in; a second clock-in for the same employee and date is
// rejected.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.EmployeeRepository.Exists(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	date, _ := validator.IsValidDate(req.Date)
	clockIn, err := businesstime.ToInstant(req.Date, req.ClockIn)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to normalize clock in time: %w", err)
	}

	// Lookup and write share a transaction so two concurrent clock-ins for
	// the same employee and day cannot both pass the existence check.
	var record attendance.AttendanceRecord
	err = s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to look up attendance record: %w", err)
		}
		if existing != nil && existing.ClockIn != nil {
			return attendance.ErrAlreadyClockedIn
		}

		if existing != nil {
			// Manual entry or absent sweep created the row first; attach the
			// clock-in and reclassify.
			existing.ClockIn = &clockIn
			if req.Notes != nil {
				existing.Notes = req.Notes
			}
			existing.Status = attendance.Classify(existing.Date, existing.ClockIn, existing.ClockOut, s.lateThreshold)
			if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
				return fmt.Errorf("failed to update attendance record: %w", err)
			}
			record = *existing
			return nil
		}

		record = attendance.AttendanceRecord{
			EmployeeID: req.EmployeeID,
			Date:       date,
			ClockIn:    &clockIn,
			Notes:      req.Notes,
		}
		record.Status = attendance.Classify(record.Date, record.ClockIn, record.ClockOut, s.lateThreshold)

		record, err = s.AttendanceRepository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(record), nil
}

// ClockOut implements attendance.AttendanceService. Requires an existing
// clock-in for the date; status is recomputed from both events.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	clockOut, err := businesstime.ToInstant(req.Date, req.ClockOut)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to normalize clock out time: %w", err)
	}

	var record attendance.AttendanceRecord
	err = s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to look up attendance record: %w", err)
		}
		if existing == nil || existing.ClockIn == nil {
			return attendance.ErrNotClockedIn
		}
		if existing.ClockOut != nil {
			return attendance.ErrAlreadyClockedOut
		}
		if !clockOut.After(*existing.ClockIn) {
			return attendance.ErrClockOutBeforeIn
		}

		existing.ClockOut = &clockOut
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		existing.Status = attendance.Classify(existing.Date, existing.ClockIn, existing.ClockOut, s.lateThreshold)

		if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		record = *existing
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(record), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, total, nil
}

func clockToDisplay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	_, clock := businesstime.FromInstant(*t)
	return &clock
}

func toResponse(record attendance.AttendanceRecord) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format(businesstime.DateLayout),
		ClockIn:      clockToDisplay(record.ClockIn),
		ClockOut:     clockToDisplay(record.ClockOut),
		Status:       string(record.Status),
		Notes:        record.Notes,
	}
}
