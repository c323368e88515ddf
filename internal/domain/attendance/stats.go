package attendance

import (
	"math"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
)

// StandardWorkdayHours is the baseline above which hours count as extra.
const StandardWorkdayHours = 8

type Stats struct {
	DaysPresent      int
	DaysAbsent       int
	DaysLeave        int
	TotalWorkingDays int
	TotalWorkHours   float64
	ExtraHours       float64
}

// ComputeStats summarises one account over [start, end].
//
// Approved leave overlapping the period counts with its full day count, even
// when it spills into a neighbouring month. A day that is both attended and
// on approved leave is counted in both DaysPresent and DaysLeave; absences
// are therefore under-reported for such days.
//
// TotalWorkingDays counts weekdays only, but a weekend check-in still counts
// as a present day, so DaysPresent+DaysAbsent can exceed TotalWorkingDays.
func ComputeStats(records []Attendance, leaves []leave.LeaveRequest, start, end, today time.Time) Stats {
	start, end, today = datetime.DateOf(start), datetime.DateOf(end), datetime.DateOf(today)

	var s Stats
	for _, r := range records {
		d := datetime.DateOf(r.Date)
		if d.Before(start) || d.After(end) || !r.HasCheckIn() {
			continue
		}
		s.DaysPresent++
		if r.HasCheckOut() {
			s.TotalWorkHours += datetime.Hours(*r.CheckIn, *r.CheckOut)
		}
	}

	for _, l := range leaves {
		if l.Status == leave.LeaveRequestStatusApproved && l.Overlaps(start, end) {
			s.DaysLeave += l.DaysRequested
		}
	}

	last := datetime.MinDate(end, today)
	if !last.Before(start) {
		s.TotalWorkingDays = datetime.WeekdaysInclusive(start, last)
	}

	s.DaysAbsent = max(0, s.TotalWorkingDays-s.DaysPresent-s.DaysLeave)
	s.ExtraHours = datetime.Round2(math.Max(0, s.TotalWorkHours-float64(s.DaysPresent*StandardWorkdayHours)))
	s.TotalWorkHours = datetime.Round2(s.TotalWorkHours)
	return s
}
