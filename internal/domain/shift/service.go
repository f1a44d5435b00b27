package shift

import "context"

// ShiftService is the consumable contract for shift scheduling.
type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, int64, error)
	UpdateStatus(ctx context.Context, req UpdateShiftStatusRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}
