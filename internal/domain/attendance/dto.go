package attendance

import (
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

type CheckOutRequest struct {
	Remarks *string `json:"remarks,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	if r.Remarks != nil && len(*r.Remarks) > 500 {
		return validator.ValidationErrors{{
			Field:   "remarks",
			Message: "remarks must not exceed 500 characters",
		}}
	}
	return nil
}

type ListAttendanceRequest struct {
	StartDate string
	EndDate   string
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if r.StartDate != "" && !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if r.EndDate != "" && !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter converts the validated request into a repository filter.
func (r *ListAttendanceRequest) Filter() AttendanceFilter {
	var f AttendanceFilter
	if d, ok := validator.IsValidDate(r.StartDate); ok {
		f.StartDate = &d
	}
	if d, ok := validator.IsValidDate(r.EndDate); ok {
		f.EndDate = &d
	}
	return f
}

type ListByDateRequest struct {
	Date string
}

func (r *ListByDateRequest) Validate() error {
	if r.Date == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "attendance_date",
			Message: "attendance_date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

type StatsRequest struct {
	Month int
	Year  int
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Month != 0 && (r.Month < 1 || r.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year != 0 && (r.Year < 1970 || r.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1970 and 9999",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID        int64      `json:"attendance_id"`
	AccountID int64      `json:"user_id"`
	Date      string     `json:"attendance_date"`
	CheckIn   *time.Time `json:"check_in"`
	CheckOut  *time.Time `json:"check_out"`
	WorkHours *float64   `json:"work_hours"`
	Remarks   *string    `json:"remarks,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		AccountID: a.AccountID,
		Date:      datetime.FormatDate(a.Date),
		CheckIn:   a.CheckIn,
		CheckOut:  a.CheckOut,
		WorkHours: a.WorkHours(),
		Remarks:   a.Remarks,
	}
}

type DailyEntry struct {
	AccountID    int64      `json:"user_id"`
	EmployeeCode string     `json:"employee_id"`
	Name         string     `json:"name"`
	Status       DayStatus  `json:"status"`
	CheckIn      *time.Time `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	WorkHours    *float64   `json:"work_hours"`
	Remarks      *string    `json:"remarks,omitempty"`
}

type DailyAttendanceResponse struct {
	Date    string       `json:"date"`
	Present int          `json:"present"`
	OnLeave int          `json:"on_leave"`
	Absent  int          `json:"absent"`
	Records []DailyEntry `json:"records"`
}

type StatsResponse struct {
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	DaysPresent      int     `json:"days_present"`
	DaysAbsent       int     `json:"days_absent"`
	DaysLeave        int     `json:"days_leave"`
	TotalWorkingDays int     `json:"total_working_days"`
	TotalWorkHours   float64 `json:"total_work_hours"`
	ExtraHours       float64 `json:"extra_hours"`
}

type DayStatusResponse struct {
	Status    DayStatus  `json:"status"`
	LeaveType *string    `json:"leave_type,omitempty"`
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
}
