package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	employees      employee.EmployeeRepository
	accounts       user.AccountRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	employees employee.EmployeeRepository,
	accounts user.AccountRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employees:      employees,
		accounts:       accounts,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) authorize(ctx context.Context, op auth.Operation, owner ...int64) (auth.Claims, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return auth.Claims{}, err
	}
	if err := auth.Authorize(claims, op, owner...); err != nil {
		return auth.Claims{}, err
	}
	return claims, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationAttendanceCheck)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	record, err := s.attendanceRepo.CheckIn(ctx, claims.AccountID, datetime.DateOf(now), now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationAttendanceCheck)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	record, err := s.attendanceRepo.GetByAccountAndDate(ctx, claims.AccountID, datetime.DateOf(now))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if !record.HasCheckIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	at := now
	if at.Before(*record.CheckIn) {
		at = *record.CheckIn
	}
	updated, err := s.attendanceRepo.CheckOut(ctx, record.ID, at, req.Remarks)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(updated), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationAttendanceViewOwn)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByAccount(ctx, claims.AccountID, req.Filter())
	if err != nil {
		return nil, err
	}
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.NewAttendanceResponse(r))
	}
	return out, nil
}

// ListByDate implements attendance.AttendanceService. An empty date means today.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, req attendance.ListByDateRequest) (attendance.DailyAttendanceResponse, error) {
	if _, err := s.authorize(ctx, auth.OperationAttendanceViewAll); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.DailyAttendanceResponse{}, err
	}

	date := datetime.DateOf(s.now())
	if req.Date != "" {
		parsed, err := datetime.ParseDate(req.Date)
		if err != nil {
			return attendance.DailyAttendanceResponse{}, err
		}
		date = parsed
	}
	return s.daily(ctx, date)
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context) (attendance.DailyAttendanceResponse, error) {
	return s.ListByDate(ctx, attendance.ListByDateRequest{})
}

func (s *AttendanceServiceImpl) daily(ctx context.Context, date time.Time) (attendance.DailyAttendanceResponse, error) {
	var (
		employees []employee.Employee
		records   []attendance.Attendance
		leaves    []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employees.List(gctx, employee.EmployeeFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedOverlapping(gctx, nil, date, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.DailyAttendanceResponse{}, fmt.Errorf("failed to load attendance for %s: %w", datetime.FormatDate(date), err)
	}

	byAccount := make(map[int64]*attendance.Attendance, len(records))
	for i := range records {
		byAccount[records[i].AccountID] = &records[i]
	}
	onLeave := make(map[int64]bool, len(leaves))
	for _, l := range leaves {
		onLeave[l.AccountID] = true
	}

	resp := attendance.DailyAttendanceResponse{
		Date:    datetime.FormatDate(date),
		Records: make([]attendance.DailyEntry, 0, len(employees)),
	}
	for _, e := range employees {
		record := byAccount[e.Account.ID]
		entry := attendance.DailyEntry{
			AccountID:    e.Account.ID,
			EmployeeCode: e.Account.EmployeeCode,
			Name:         e.Profile.FullName(),
			Status:       attendance.ClassifyDay(record, onLeave[e.Account.ID]),
		}
		if record != nil {
			entry.CheckIn = record.CheckIn
			entry.CheckOut = record.CheckOut
			entry.WorkHours = record.WorkHours()
			entry.Remarks = record.Remarks
		}

		switch entry.Status {
		case attendance.DayStatusPresent:
			resp.Present++
		case attendance.DayStatusLeave:
			resp.OnLeave++
		default:
			resp.Absent++
		}
		resp.Records = append(resp.Records, entry)
	}
	return resp, nil
}

// Stats implements attendance.AttendanceService. Month and year default to
// the current ones.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, req attendance.StatsRequest) (attendance.StatsResponse, error) {
	claims, err := s.authorize(ctx, auth.OperationAttendanceStats)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	now := s.now()
	month, year := req.Month, req.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	start, end := datetime.MonthBounds(year, time.Month(month))

	var (
		records []attendance.Attendance
		leaves  []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByAccount(gctx, claims.AccountID, attendance.AttendanceFilter{StartDate: &start, EndDate: &end})
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedOverlapping(gctx, &claims.AccountID, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to load attendance stats: %w", err)
	}

	stats := attendance.ComputeStats(records, leaves, start, end, now)
	return attendance.StatsResponse{
		Month:            month,
		Year:             year,
		DaysPresent:      stats.DaysPresent,
		DaysAbsent:       stats.DaysAbsent,
		DaysLeave:        stats.DaysLeave,
		TotalWorkingDays: stats.TotalWorkingDays,
		TotalWorkHours:   stats.TotalWorkHours,
		ExtraHours:       stats.ExtraHours,
	}, nil
}

// DayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DayStatus(ctx context.Context, accountID int64) (attendance.DayStatusResponse, error) {
	if _, err := s.authorize(ctx, auth.OperationEmployeeStatus, accountID); err != nil {
		return attendance.DayStatusResponse{}, err
	}

	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return attendance.DayStatusResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.DayStatusResponse{}, err
	}

	today := datetime.DateOf(s.now())
	var (
		record *attendance.Attendance
		leaves []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.attendanceRepo.GetByAccountAndDate(gctx, accountID, today)
		switch {
		case err == nil:
			record = &r
		case !errors.Is(err, attendance.ErrAttendanceNotFound):
			return err
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedOverlapping(gctx, &accountID, today, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to load day status: %w", err)
	}

	resp := attendance.DayStatusResponse{
		Status: attendance.ClassifyDay(record, len(leaves) > 0),
	}
	switch resp.Status {
	case attendance.DayStatusPresent:
		resp.CheckIn = record.CheckIn
		resp.CheckOut = record.CheckOut
	case attendance.DayStatusLeave:
		leaveType := string(leaves[0].Type)
		resp.LeaveType = &leaveType
	}
	return resp, nil
}
