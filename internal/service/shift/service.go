package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/employee"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/shift"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	employee.EmployeeRepository
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewShiftService(
	db *database.DB,
	shiftRepository shift.ShiftRepository,
	employeeRepository employee.EmployeeRepository,
) *ShiftServiceImpl {
	return &ShiftServiceImpl{
		db:                 db,
		ShiftRepository:    shiftRepository,
		EmployeeRepository: employeeRepository,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// BuildInterval validates user-submitted shift fields and materializes a
// ShiftInterval with both bounds normalized to UTC instants. Field errors
// and the interval-ordering error are collected together so the admin form
// can surface every problem at once. No side effects; persistence is the
// caller's job.
func BuildInterval(req shift.CreateShiftRequest) (shift.ShiftInterval, error) {
	var errs validator.ValidationErrors
	if err := req.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = verrs
		}
	}

	var startInstant, endInstant time.Time
	haveTimes := !validator.IsEmpty(req.Date) &&
		!validator.IsEmpty(req.StartTime) && !validator.IsEmpty(req.EndTime)

	if haveTimes {
		var startErr, endErr error
		startInstant, startErr = businesstime.ToInstant(req.Date, req.StartTime)
		endInstant, endErr = businesstime.ToInstant(req.Date, req.EndTime)

		// Parse failures were already reported field-by-field in Validate;
		// only check ordering when both bounds normalized cleanly.
		if startErr == nil && endErr == nil && !endInstant.After(startInstant) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end time must be after start time",
			})
		}
	}

	if len(errs) > 0 {
		return shift.ShiftInterval{}, errs
	}

	return shift.ShiftInterval{
		EmployeeID:   req.EmployeeID,
		StartInstant: startInstant,
		EndInstant:   endInstant,
		Location:     req.Location,
		Notes:        req.Notes,
		Status:       shift.StatusScheduled,
	}, nil
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	interval, err := BuildInterval(req)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	exists, err := s.EmployeeRepository.Exists(ctx, interval.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return shift.ShiftResponse{}, employee.ErrEmployeeNotFound
	}

	created, err := s.ShiftRepository.Create(ctx, interval)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(found), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, int64, error) {
	shifts, total, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toResponse(sh))
	}
	return responses, total, nil
}

// UpdateStatus implements shift.ShiftService. Time bounds never change
// here; a shift with wrong times is deleted and recreated. Read and write
// share a transaction so two concurrent transitions cannot both pass the
// check.
func (s *ShiftServiceImpl) UpdateStatus(ctx context.Context, req shift.UpdateShiftStatusRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	var current shift.ShiftInterval
	next := shift.Status(req.Status)

	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		current, err = s.ShiftRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if current.Finalized() {
			return shift.ErrShiftAlreadyFinalized
		}
		if !current.CanTransitionTo(next) {
			return shift.ErrInvalidStatusChange
		}

		return s.ShiftRepository.UpdateStatus(ctx, current.ID, next)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	current.Status = next
	return toResponse(current), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ShiftRepository.Delete(ctx, id)
}

func toResponse(s shift.ShiftInterval) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Location:     s.Location,
		Notes:        s.Notes,
		Status:       string(s.Status),
	}

	if !s.IsMigrated() {
		// Row the backfill has not rewritten yet: render the legacy split
		// fields as-is and omit the instants.
		if s.LegacyStartDate != nil {
			resp.Date = s.LegacyStartDate.Format(businesstime.DateLayout)
		}
		if s.LegacyStartTime != nil {
			resp.StartTime = *s.LegacyStartTime
		}
		if s.LegacyEndTime != nil {
			resp.EndTime = *s.LegacyEndTime
		}
		return resp
	}

	date, startTime := businesstime.FromInstant(s.StartInstant)
	_, endTime := businesstime.FromInstant(s.EndInstant)
	resp.Date = date
	resp.StartTime = startTime
	resp.EndTime = endTime
	resp.StartInstant = s.StartInstant.Format(time.RFC3339)
	resp.EndInstant = s.EndInstant.Format(time.RFC3339)
	return resp
}
