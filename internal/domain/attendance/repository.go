package attendance

import (
	"context"
	"time"
)

type AttendanceFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type AttendanceRepository interface {
	// CheckIn creates the (account, date) record or fills a missing check-in.
	// It returns ErrAlreadyCheckedIn when the record already has one.
	CheckIn(ctx context.Context, accountID int64, date time.Time, at time.Time) (Attendance, error)
	// CheckOut sets check-out only while it is still empty and returns
	// ErrAlreadyCheckedOut otherwise.
	CheckOut(ctx context.Context, id int64, at time.Time, remarks *string) (Attendance, error)
	GetByAccountAndDate(ctx context.Context, accountID int64, date time.Time) (Attendance, error)
	ListByAccount(ctx context.Context, accountID int64, filter AttendanceFilter) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
