package attendance

import (
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
)

// Attendance is the record of one account on one calendar date.
type Attendance struct {
	ID        int64
	AccountID int64
	Date      time.Time
	CheckIn   *time.Time
	CheckOut  *time.Time
	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Attendance) HasCheckIn() bool {
	return a.CheckIn != nil
}

func (a Attendance) HasCheckOut() bool {
	return a.CheckOut != nil
}

// WorkHours is nil until both timestamps exist.
func (a Attendance) WorkHours() *float64 {
	if a.CheckIn == nil || a.CheckOut == nil {
		return nil
	}
	h := datetime.Round2(datetime.Hours(*a.CheckIn, *a.CheckOut))
	return &h
}

type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusLeave   DayStatus = "leave"
	DayStatusAbsent  DayStatus = "absent"
)

// ClassifyDay: a check-in wins over approved leave, which wins over absence.
func ClassifyDay(record *Attendance, onLeave bool) DayStatus {
	switch {
	case record != nil && record.HasCheckIn():
		return DayStatusPresent
	case onLeave:
		return DayStatusLeave
	default:
		return DayStatusAbsent
	}
}
