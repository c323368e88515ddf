package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	ListMine(ctx context.Context, req ListAttendanceRequest) ([]AttendanceResponse, error)
	ListByDate(ctx context.Context, req ListByDateRequest) (DailyAttendanceResponse, error)
	Today(ctx context.Context) (DailyAttendanceResponse, error)
	Stats(ctx context.Context, req StatsRequest) (StatsResponse, error)
	DayStatus(ctx context.Context, accountID int64) (DayStatusResponse, error)
}
