package attendance

import (
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := datetime.ParseDate(s)
	require.NoError(t, err)
	return d
}

func at(t *testing.T, date string, hour, minute int) *time.Time {
	t.Helper()
	d := day(t, date)
	ts := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
	return &ts
}

func TestWorkHours(t *testing.T) {
	rec := Attendance{Date: day(t, "2025-06-02"), CheckIn: at(t, "2025-06-02", 9, 0), CheckOut: at(t, "2025-06-02", 18, 30)}
	require.NotNil(t, rec.WorkHours())
	assert.Equal(t, 9.5, *rec.WorkHours())

	open := Attendance{CheckIn: at(t, "2025-06-02", 9, 0)}
	assert.Nil(t, open.WorkHours())
}

func TestClassifyDay(t *testing.T) {
	in := &Attendance{CheckIn: at(t, "2025-06-02", 9, 0)}
	assert.Equal(t, DayStatusPresent, ClassifyDay(in, false))
	assert.Equal(t, DayStatusPresent, ClassifyDay(in, true))
	assert.Equal(t, DayStatusLeave, ClassifyDay(nil, true))
	assert.Equal(t, DayStatusLeave, ClassifyDay(&Attendance{}, true))
	assert.Equal(t, DayStatusAbsent, ClassifyDay(nil, false))
}

func TestComputeStats_SingleLongDay(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)
	records := []Attendance{
		{Date: day(t, "2025-06-02"), CheckIn: at(t, "2025-06-02", 9, 0), CheckOut: at(t, "2025-06-02", 18, 30)},
	}

	s := ComputeStats(records, nil, start, end, day(t, "2025-06-30"))

	assert.Equal(t, 1, s.DaysPresent)
	assert.Equal(t, 21, s.TotalWorkingDays)
	assert.Equal(t, 20, s.DaysAbsent)
	assert.Equal(t, 0, s.DaysLeave)
	assert.Equal(t, 9.5, s.TotalWorkHours)
	assert.Equal(t, 1.5, s.ExtraHours)
	assert.LessOrEqual(t, s.DaysPresent+s.DaysAbsent, s.TotalWorkingDays)
}

func TestComputeStats_FutureDatesExcluded(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)

	// Monday 9 June: 2-6 and 9 are working days.
	s := ComputeStats(nil, nil, start, end, day(t, "2025-06-09"))
	assert.Equal(t, 6, s.TotalWorkingDays)
	assert.Equal(t, 6, s.DaysAbsent)

	future := ComputeStats(nil, nil, start, end, day(t, "2025-05-20"))
	assert.Equal(t, 0, future.TotalWorkingDays)
	assert.Equal(t, 0, future.DaysAbsent)
}

func TestComputeStats_ApprovedLeaveOverlapCountedWhole(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)
	leaves := []leave.LeaveRequest{
		{StartDate: day(t, "2025-05-29"), EndDate: day(t, "2025-06-03"), DaysRequested: 6, Status: leave.LeaveRequestStatusApproved},
		{StartDate: day(t, "2025-06-10"), EndDate: day(t, "2025-06-10"), DaysRequested: 1, Status: leave.LeaveRequestStatusPending},
		{StartDate: day(t, "2025-06-11"), EndDate: day(t, "2025-06-12"), DaysRequested: 2, Status: leave.LeaveRequestStatusRejected},
		{StartDate: day(t, "2025-07-01"), EndDate: day(t, "2025-07-02"), DaysRequested: 2, Status: leave.LeaveRequestStatusApproved},
	}

	s := ComputeStats(nil, leaves, start, end, day(t, "2025-06-30"))
	assert.Equal(t, 6, s.DaysLeave)
	assert.Equal(t, 15, s.DaysAbsent)
}

func TestComputeStats_AttendedLeaveDayCountedTwice(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)
	records := []Attendance{
		{Date: day(t, "2025-06-02"), CheckIn: at(t, "2025-06-02", 9, 0), CheckOut: at(t, "2025-06-02", 12, 0)},
	}
	leaves := []leave.LeaveRequest{
		{StartDate: day(t, "2025-06-02"), EndDate: day(t, "2025-06-02"), DaysRequested: 1, Status: leave.LeaveRequestStatusApproved},
	}

	s := ComputeStats(records, leaves, start, end, day(t, "2025-06-30"))
	assert.Equal(t, 1, s.DaysPresent)
	assert.Equal(t, 1, s.DaysLeave)
	assert.Equal(t, 19, s.DaysAbsent)
	assert.Equal(t, 0.0, s.ExtraHours)
}

func TestComputeStats_WeekendCheckInCountsAsPresent(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)
	// Sunday 1 June and Monday 2 June, viewed on the Monday.
	records := []Attendance{
		{Date: day(t, "2025-06-01"), CheckIn: at(t, "2025-06-01", 10, 0), CheckOut: at(t, "2025-06-01", 14, 0)},
		{Date: day(t, "2025-06-02"), CheckIn: at(t, "2025-06-02", 9, 0), CheckOut: at(t, "2025-06-02", 17, 0)},
	}

	s := ComputeStats(records, nil, start, end, day(t, "2025-06-02"))
	assert.Equal(t, 2, s.DaysPresent)
	assert.Equal(t, 1, s.TotalWorkingDays)
	assert.Equal(t, 0, s.DaysAbsent)
	assert.Greater(t, s.DaysPresent+s.DaysAbsent, s.TotalWorkingDays)
	assert.Equal(t, 12.0, s.TotalWorkHours)
	assert.Equal(t, 0.0, s.ExtraHours)
}

func TestComputeStats_AbsentNeverNegative(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)
	leaves := []leave.LeaveRequest{
		{StartDate: day(t, "2025-06-01"), EndDate: day(t, "2025-06-30"), DaysRequested: 30, Status: leave.LeaveRequestStatusApproved},
	}

	s := ComputeStats(nil, leaves, start, end, day(t, "2025-06-30"))
	assert.Equal(t, 0, s.DaysAbsent)
	assert.Equal(t, 30, s.DaysLeave)
}

func TestComputeStats_IgnoresOpenAndOutOfRangeRecords(t *testing.T) {
	start, end := datetime.MonthBounds(2025, time.June)
	records := []Attendance{
		{Date: day(t, "2025-06-03"), CheckIn: at(t, "2025-06-03", 9, 0)},
		{Date: day(t, "2025-05-30"), CheckIn: at(t, "2025-05-30", 9, 0), CheckOut: at(t, "2025-05-30", 20, 0)},
		{Date: day(t, "2025-06-04")},
	}

	s := ComputeStats(records, nil, start, end, day(t, "2025-06-30"))
	assert.Equal(t, 1, s.DaysPresent)
	assert.Equal(t, 0.0, s.TotalWorkHours)
	assert.Equal(t, 0.0, s.ExtraHours)
}
