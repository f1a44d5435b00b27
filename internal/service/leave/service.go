package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/employee"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/leave"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/businesstime"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/database"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/pkg/validator"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	now  func() time.Time
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(
	db *database.DB,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		now:                    time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Create implements leave.LeaveService. Field and date-range violations are
// reported together; the request starts pending.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveResponse, error) {
	var errs validator.ValidationErrors
	if err := req.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = verrs
		}
	}

	var start, end time.Time
	var days int
	if !validator.IsEmpty(req.StartDate) && !validator.IsEmpty(req.EndDate) {
		var err error
		start, end, days, err = leave.CalculateDays(req.StartDate, req.EndDate, s.now())
		if err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, verrs...)
			}
		}
	}

	if len(errs) > 0 {
		return leave.LeaveResponse{}, errs
	}

	exists, err := s.EmployeeRepository.Exists(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
	}

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Status:     leave.StatusPending,
		Notes:      req.Notes,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

// decide records a terminal decision on a pending request. The pending
// check and the write share a transaction so two admins deciding at once
// cannot both succeed. Decided requests never change again.
func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequestRequest, status leave.Status) (leave.LeaveResponse, error) {
	var request leave.LeaveRequest
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.LeaveRequestRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if request.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		decidedAt := s.now()
		request.Status = status
		request.DecidedBy = &req.DecidedBy
		request.DecidedAt = &decidedAt
		if req.Notes != nil {
			request.Notes = req.Notes
		}

		if err := s.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(request), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toResponse(request), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, int64, error) {
	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses, total, nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		EmployeeName: request.EmployeeName,
		Type:         string(request.Type),
		StartDate:    request.StartDate.Format(businesstime.DateLayout),
		EndDate:      request.EndDate.Format(businesstime.DateLayout),
		Days:         request.Days,
		Status:       string(request.Status),
		Notes:        request.Notes,
	}
}
