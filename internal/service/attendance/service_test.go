package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestAttendanceService(t *testing.T, start time.Time) (*AttendanceServiceImpl, *memory.Store, *testClock) {
	t.Helper()
	store := memory.NewStore()
	clock := &testClock{now: start}
	svc := NewAttendanceService(store.Attendance(), store.LeaveRequests(), store.Employees(), store.Accounts())
	svc.now = clock.Now
	return svc, store, clock
}

func seedAccount(t *testing.T, store *memory.Store, email, code string, role user.Role, first, last string) user.Account {
	t.Helper()
	ctx := context.Background()
	a, err := store.Accounts().Create(ctx, user.Account{Email: email, EmployeeCode: code, PasswordHash: "x", Role: role})
	require.NoError(t, err)
	_, err = store.Employees().CreateProfile(ctx, employee.Profile{AccountID: a.ID, FirstName: first, LastName: last})
	require.NoError(t, err)
	return a
}

func asAccount(a user.Account) context.Context {
	return auth.NewContext(context.Background(), auth.ClaimsFor(a))
}

func approvedLeave(t *testing.T, store *memory.Store, accountID int64, leaveType leave.LeaveType, start, end time.Time, days int) {
	t.Helper()
	_, err := store.LeaveRequests().Create(context.Background(), leave.LeaveRequest{
		AccountID: accountID, Type: leaveType, StartDate: start, EndDate: end,
		DaysRequested: days, IsPaid: leaveType.IsPaid(), Status: leave.LeaveRequestStatusApproved,
	})
	require.NoError(t, err)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAttendanceService_CheckInCheckOut(t *testing.T) {
	svc, store, clock := newTestAttendanceService(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, "Emma", "Mills")
	ctx := asAccount(emp)

	_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	assert.Equal(t, "not checked in", err.Error())

	in, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", in.Date)
	assert.Nil(t, in.WorkHours)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "already checked in", err.Error())

	clock.now = clock.now.Add(9*time.Hour + 30*time.Minute)
	remarks := "long day"
	out, err := svc.CheckOut(ctx, attendance.CheckOutRequest{Remarks: &remarks})
	require.NoError(t, err)
	require.NotNil(t, out.WorkHours)
	assert.Equal(t, 9.5, *out.WorkHours)
	assert.Equal(t, "long day", *out.Remarks)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	assert.Equal(t, "already checked out", err.Error())

	// Next day starts a fresh record.
	clock.now = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, attendance.ListAttendanceRequest{})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2025-06-03", mine[0].Date)

	filtered, err := svc.ListMine(ctx, attendance.ListAttendanceRequest{StartDate: "2025-06-02", EndDate: "2025-06-02"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2025-06-02", filtered[0].Date)
}

func TestAttendanceService_RequiresSession(t *testing.T) {
	svc, _, _ := newTestAttendanceService(t, time.Now())
	_, err := svc.CheckIn(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAttendanceService_ListByDate(t *testing.T) {
	svc, store, _ := newTestAttendanceService(t, time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC))
	ctx := context.Background()

	admin := seedAccount(t, store, "admin@dayflow.io", "DFAA20250001", user.RoleAdmin, "Ada", "Admin")
	present := seedAccount(t, store, "p@dayflow.io", "DFPP20250001", user.RoleEmployee, "Pam", "Present")
	onLeave := seedAccount(t, store, "l@dayflow.io", "DFLL20250001", user.RoleEmployee, "Leo", "Leave")

	_, err := store.Attendance().CheckIn(ctx, present.ID, date(2025, 6, 2), time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	approvedLeave(t, store, onLeave.ID, leave.LeaveTypeSick, date(2025, 6, 2), date(2025, 6, 2), 1)

	today, err := svc.Today(asAccount(admin))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", today.Date)
	assert.Equal(t, 1, today.Present)
	assert.Equal(t, 1, today.OnLeave)
	assert.Equal(t, 1, today.Absent)
	require.Len(t, today.Records, 3)
	assert.Equal(t, "Pam Present", today.Records[1].Name)
	assert.Equal(t, attendance.DayStatusPresent, today.Records[1].Status)

	other, err := svc.ListByDate(asAccount(admin), attendance.ListByDateRequest{Date: "2025-06-03"})
	require.NoError(t, err)
	assert.Equal(t, 3, other.Absent)

	_, err = svc.ListByDate(asAccount(admin), attendance.ListByDateRequest{Date: "03/06/2025"})
	assert.Error(t, err)

	_, err = svc.Today(asAccount(present))
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestAttendanceService_Stats(t *testing.T) {
	svc, store, _ := newTestAttendanceService(t, time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, "Emma", "Mills")

	// Two days in June 2025: 9.5h and 8h.
	for _, d := range []struct {
		day   int
		hours time.Duration
	}{{2, 9*time.Hour + 30*time.Minute}, {3, 8 * time.Hour}} {
		in := time.Date(2025, 6, d.day, 9, 0, 0, 0, time.UTC)
		rec, err := store.Attendance().CheckIn(ctx, emp.ID, date(2025, 6, d.day), in)
		require.NoError(t, err)
		_, err = store.Attendance().CheckOut(ctx, rec.ID, in.Add(d.hours), nil)
		require.NoError(t, err)
	}
	// Spills into July; counted whole.
	approvedLeave(t, store, emp.ID, leave.LeaveTypePaid, date(2025, 6, 30), date(2025, 7, 2), 3)

	stats, err := svc.Stats(asAccount(emp), attendance.StatsRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Month)
	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, 2, stats.DaysPresent)
	assert.Equal(t, 3, stats.DaysLeave)
	assert.Equal(t, 21, stats.TotalWorkingDays)
	assert.Equal(t, 16, stats.DaysAbsent)
	assert.Equal(t, 17.5, stats.TotalWorkHours)
	assert.Equal(t, 1.5, stats.ExtraHours)

	current, err := svc.Stats(asAccount(emp), attendance.StatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 7, current.Month)
	assert.Equal(t, 3, current.DaysLeave)
	// 1-15 July 2025 holds 11 weekdays.
	assert.Equal(t, 11, current.TotalWorkingDays)

	_, err = svc.Stats(asAccount(emp), attendance.StatsRequest{Month: 13})
	assert.Error(t, err)
}

func TestAttendanceService_DayStatus(t *testing.T) {
	svc, store, _ := newTestAttendanceService(t, time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	hr := seedAccount(t, store, "hr@dayflow.io", "DFHR20250001", user.RoleHR, "Harry", "Resources")
	present := seedAccount(t, store, "p@dayflow.io", "DFPP20250001", user.RoleEmployee, "Pam", "Present")
	onLeave := seedAccount(t, store, "l@dayflow.io", "DFLL20250001", user.RoleEmployee, "Leo", "Leave")

	_, err := store.Attendance().CheckIn(ctx, present.ID, date(2025, 6, 2), time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	approvedLeave(t, store, onLeave.ID, leave.LeaveTypeUnpaid, date(2025, 6, 1), date(2025, 6, 4), 4)

	got, err := svc.DayStatus(asAccount(hr), present.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStatusPresent, got.Status)
	assert.NotNil(t, got.CheckIn)
	assert.Nil(t, got.LeaveType)

	got, err = svc.DayStatus(asAccount(onLeave), onLeave.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStatusLeave, got.Status)
	require.NotNil(t, got.LeaveType)
	assert.Equal(t, "unpaid", *got.LeaveType)

	got, err = svc.DayStatus(asAccount(hr), hr.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStatusAbsent, got.Status)

	_, err = svc.DayStatus(asAccount(present), onLeave.ID)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = svc.DayStatus(asAccount(hr), 9999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
