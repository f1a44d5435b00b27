package attendance

import "context"

// AttendanceService is the consumable contract for attendance events.
type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)
}
