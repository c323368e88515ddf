package payroll

import (
	"context"
	"testing"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayrollService(t *testing.T) (*PayrollServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewPayrollService(store.Transactor(), store.Accounts(), store.Employees(), store.Salaries()), store
}

func seedEmployee(t *testing.T, store *memory.Store, email, code string, role user.Role, wage *decimal.Decimal) user.Account {
	t.Helper()
	ctx := context.Background()
	a, err := store.Accounts().Create(ctx, user.Account{Email: email, EmployeeCode: code, PasswordHash: "x", Role: role})
	require.NoError(t, err)
	p := employee.Profile{AccountID: a.ID, FirstName: "Test", LastName: "User"}
	if wage != nil {
		p.BaseWage = decimal.NullDecimal{Decimal: *wage, Valid: true}
	}
	_, err = store.Employees().CreateProfile(ctx, p)
	require.NoError(t, err)
	return a
}

func asAccount(a user.Account) context.Context {
	return auth.NewContext(context.Background(), auth.ClaimsFor(a))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestPayrollService_GetSalary(t *testing.T) {
	svc, store := newTestPayrollService(t)
	wage := dec("50000")
	emp := seedEmployee(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, &wage)
	other := seedEmployee(t, store, "other@dayflow.io", "DFOT20250001", user.RoleEmployee, nil)
	hr := seedEmployee(t, store, "hr@dayflow.io", "DFHR20250001", user.RoleHR, nil)

	t.Run("default structure from base wage", func(t *testing.T) {
		got, err := svc.GetSalary(asAccount(emp), emp.ID)
		require.NoError(t, err)
		assert.Equal(t, payroll.SourceDefault, got.Source)
		assert.Equal(t, "DFEM20250001", got.EmployeeCode)
		assertDecimal(t, "600000", got.YearlyWage)
		assertDecimal(t, "25000", got.BasicAmount)
		assertDecimal(t, "12500", got.HRAAmount)
		assertDecimal(t, "3000", got.PFEmployee)
		assertDecimal(t, "46800", got.NetSalary)
	})

	t.Run("missing base wage counts as zero", func(t *testing.T) {
		got, err := svc.GetSalary(asAccount(hr), other.ID)
		require.NoError(t, err)
		assert.True(t, got.MonthlyWage.IsZero())
		assertDecimal(t, "-200", got.NetSalary)
	})

	t.Run("other employee forbidden", func(t *testing.T) {
		_, err := svc.GetSalary(asAccount(other), emp.ID)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.GetSalary(asAccount(hr), 9999)
		assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	})
}

func TestPayrollService_UpdateSalary(t *testing.T) {
	svc, store := newTestPayrollService(t)
	emp := seedEmployee(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee, nil)
	admin := seedEmployee(t, store, "admin@dayflow.io", "DFAD20250001", user.RoleAdmin, nil)

	wage := dec("60000")
	basic := dec("40")
	req := payroll.UpdateSalaryRequest{MonthlyWage: &wage, BasicPercent: &basic}

	_, err := svc.UpdateSalary(asAccount(emp), emp.ID, req)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	got, err := svc.UpdateSalary(asAccount(admin), emp.ID, req)
	require.NoError(t, err)
	assert.Equal(t, payroll.SourceConfigured, got.Source)
	assertDecimal(t, "24000", got.BasicAmount)
	assertDecimal(t, "12", got.PFPercent)
	assertDecimal(t, "2880", got.PFEmployee)
	assertDecimal(t, "56920", got.NetSalary)

	profile, err := store.Employees().GetProfile(context.Background(), emp.ID)
	require.NoError(t, err)
	require.True(t, profile.BaseWage.Valid)
	assertDecimal(t, "60000", profile.BaseWage.Decimal)

	read, err := svc.GetSalary(asAccount(emp), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.SourceConfigured, read.Source)
	assertDecimal(t, "40", read.BasicPercent)

	t.Run("negative wage", func(t *testing.T) {
		negative := dec("-1")
		_, err := svc.UpdateSalary(asAccount(admin), emp.ID, payroll.UpdateSalaryRequest{MonthlyWage: &negative})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.UpdateSalary(asAccount(admin), 9999, req)
		assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
	})
}
