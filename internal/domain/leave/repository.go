package leave

import (
	"context"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	// Create creates a new leave request in pending status
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus records the decision on a pending request
	UpdateStatus(ctx context.Context, request LeaveRequest) error

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
}
