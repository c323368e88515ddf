package employee

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/password"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	testToday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func newTestEmployeeService(t *testing.T) (*EmployeeServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewEmployeeService(
		store.Transactor(), store.Accounts(), store.Companies(), store.Employees(),
		store.Attendance(), store.LeaveRequests(), store.Salaries(), "DF",
	)
	svc.now = func() time.Time { return testNow }
	return svc, store
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

func TestEmployeeService_Create(t *testing.T) {
	svc, store := newTestEmployeeService(t)
	_, err := store.Companies().Create(context.Background(), company.Company{Name: "Acme", Prefix: "ACME"})
	require.NoError(t, err)
	admin := seedAccount(t, store, "admin@acme.io", "ACAD20250001", user.RoleAdmin, "Ada", "Admin")
	ctx := asAccount(admin)

	wage := decimal.NewFromInt(30000)
	first, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:  "John",
		LastName:   "Smith",
		Email:      "John@Acme.io",
		JoinDate:   "2024-03-15",
		BaseSalary: &wage,
	})
	require.NoError(t, err)
	assert.Equal(t, "ACJS20240001", first.EmployeeCode)
	assert.Equal(t, "john@acme.io", first.Email)
	assert.Len(t, first.TemporaryPassword, 12)

	account, err := store.Accounts().GetByID(context.Background(), first.AccountID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, account.Role)
	assert.True(t, password.Verify(first.TemporaryPassword, account.PasswordHash))

	profile, err := store.Employees().GetProfile(context.Background(), first.AccountID)
	require.NoError(t, err)
	assert.True(t, profile.BaseWage.Valid)
	assert.True(t, profile.BaseWage.Decimal.Equal(wage))

	second, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "Jake",
		LastName:  "Stone",
		Email:     "jake@acme.io",
		Role:      "hr",
		JoinDate:  "2024-11-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACJS20240002", second.EmployeeCode)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: "John",
		LastName:  "Again",
		Email:     "john@acme.io",
		JoinDate:  "2024-03-15",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestEmployeeService_Create_DefaultPrefixAndGate(t *testing.T) {
	svc, store := newTestEmployeeService(t)
	hr := seedAccount(t, store, "hr@dayflow.io", "DFHR20250001", user.RoleHR, "Harry", "Resources")
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, "Emma", "Mills")

	req := employee.CreateEmployeeRequest{FirstName: "Olivia", LastName: "Doe", Email: "olivia@dayflow.io", JoinDate: "2022-01-10"}

	_, err := svc.Create(asAccount(emp), req)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	created, err := svc.Create(asAccount(hr), req)
	require.NoError(t, err)
	assert.Equal(t, "DFOD20220001", created.EmployeeCode)
}

func TestEmployeeService_List_TodayStatus(t *testing.T) {
	svc, store := newTestEmployeeService(t)
	ctx := context.Background()

	admin := seedAccount(t, store, "admin@dayflow.io", "DFAA20250001", user.RoleAdmin, "Ada", "Admin")
	present := seedAccount(t, store, "p@dayflow.io", "DFPP20250001", user.RoleEmployee, "Pam", "Present")
	onLeave := seedAccount(t, store, "l@dayflow.io", "DFLL20250001", user.RoleEmployee, "Leo", "Leave")
	absent := seedAccount(t, store, "a@dayflow.io", "DFAB20250001", user.RoleHR, "Abe", "Absent")
	both := seedAccount(t, store, "b@dayflow.io", "DFBB20250001", user.RoleEmployee, "Bo", "Both")

	_, err := store.Attendance().CheckIn(ctx, present.ID, testToday, testNow)
	require.NoError(t, err)
	_, err = store.Attendance().CheckIn(ctx, both.ID, testToday, testNow)
	require.NoError(t, err)
	for _, id := range []int64{onLeave.ID, both.ID} {
		_, err = store.LeaveRequests().Create(ctx, leave.LeaveRequest{
			AccountID: id, Type: leave.LeaveTypePaid, StartDate: testToday.AddDate(0, 0, -1), EndDate: testToday.AddDate(0, 0, 1),
			DaysRequested: 3, IsPaid: true, Status: leave.LeaveRequestStatusApproved,
		})
		require.NoError(t, err)
	}

	list, err := svc.List(asAccount(admin))
	require.NoError(t, err)

	statuses := map[int64]attendance.DayStatus{}
	for _, e := range list {
		require.NotNil(t, e.TodayStatus)
		statuses[e.AccountID] = *e.TodayStatus
	}
	assert.NotContains(t, statuses, admin.ID)
	assert.Equal(t, map[int64]attendance.DayStatus{
		present.ID: attendance.DayStatusPresent,
		onLeave.ID: attendance.DayStatusLeave,
		absent.ID:  attendance.DayStatusAbsent,
		both.ID:    attendance.DayStatusPresent,
	}, statuses)

	_, err = svc.List(asAccount(present))
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestEmployeeService_Get(t *testing.T) {
	svc, store := newTestEmployeeService(t)
	admin := seedAccount(t, store, "admin@dayflow.io", "DFAA20250001", user.RoleAdmin, "Ada", "Admin")
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, "Emma", "Mills")
	other := seedAccount(t, store, "other@dayflow.io", "DFOT20250001", user.RoleEmployee, "Otto", "Other")

	t.Run("self", func(t *testing.T) {
		detail, err := svc.Get(asAccount(emp), emp.ID)
		require.NoError(t, err)
		assert.Equal(t, "DFEM20250001", detail.EmployeeCode)
		require.NotNil(t, detail.SalaryStructure)
		assert.Equal(t, payroll.SourceDefault, detail.SalaryStructure.Source)
	})

	t.Run("employee reading another profile", func(t *testing.T) {
		_, err := svc.Get(asAccount(emp), other.ID)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("configured salary", func(t *testing.T) {
		_, err := store.Salaries().Upsert(context.Background(), payroll.SalaryStructure{
			EmployeeCode: "DFOT20250001", MonthlyWage: decimal.NewFromInt(50000), Config: payroll.DefaultSalaryConfig(),
		})
		require.NoError(t, err)

		detail, err := svc.Get(asAccount(admin), other.ID)
		require.NoError(t, err)
		require.NotNil(t, detail.SalaryStructure)
		assert.Equal(t, payroll.SourceConfigured, detail.SalaryStructure.Source)
		assert.Equal(t, "25000", detail.SalaryStructure.BasicAmount.String())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.Get(asAccount(admin), 9999)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	svc, store := newTestEmployeeService(t)
	admin := seedAccount(t, store, "admin@dayflow.io", "DFAA20250001", user.RoleAdmin, "Ada", "Admin")
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, "Emma", "Mills")
	other := seedAccount(t, store, "other@dayflow.io", "DFOT20250001", user.RoleEmployee, "Otto", "Other")

	phone := "+91 98765 43210"
	department := "Finance"
	skills := []string{"go"}

	t.Run("self update keeps only self-service fields", func(t *testing.T) {
		err := svc.Update(asAccount(emp), emp.ID, employee.UpdateEmployeeRequest{
			Phone:      &phone,
			Department: &department,
			Skills:     &skills,
		})
		require.NoError(t, err)

		p, err := store.Employees().GetProfile(context.Background(), emp.ID)
		require.NoError(t, err)
		assert.Equal(t, phone, *p.Phone)
		assert.Equal(t, skills, p.Skills)
		assert.Nil(t, p.Department)
	})

	t.Run("privileged update", func(t *testing.T) {
		require.NoError(t, svc.Update(asAccount(admin), emp.ID, employee.UpdateEmployeeRequest{Department: &department}))

		p, err := store.Employees().GetProfile(context.Background(), emp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Finance", *p.Department)
	})

	t.Run("employee updating another profile", func(t *testing.T) {
		err := svc.Update(asAccount(emp), other.ID, employee.UpdateEmployeeRequest{Phone: &phone})
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("invalid gender", func(t *testing.T) {
		g := "robot"
		err := svc.Update(asAccount(admin), emp.ID, employee.UpdateEmployeeRequest{Gender: &g})
		assert.Error(t, err)
	})
}
