package leave

import "context"

// LeaveService is the consumable contract for leave requests.
type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveResponse, error)
	Approve(ctx context.Context, req DecideLeaveRequestRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req DecideLeaveRequestRequest) (LeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, int64, error)
}
