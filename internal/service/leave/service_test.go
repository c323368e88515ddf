package leave

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func newTestLeaveService(t *testing.T) (*LeaveServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewLeaveService(store.LeaveRequests())
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func seedAccount(t *testing.T, store *memory.Store, email, code string, role user.Role) user.Account {
	t.Helper()
	a, err := store.Accounts().Create(context.Background(), user.Account{Email: email, EmployeeCode: code, PasswordHash: "x", Role: role})
	require.NoError(t, err)
	return a
}

func asAccount(a user.Account) context.Context {
	return auth.NewContext(context.Background(), auth.ClaimsFor(a))
}

func TestLeaveService_Apply(t *testing.T) {
	svc, store := newTestLeaveService(t)
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee)
	ctx := asAccount(emp)

	t.Run("single day today", func(t *testing.T) {
		got, err := svc.Apply(ctx, leave.CreateLeaveRequest{LeaveType: "sick", StartDate: "2025-06-02", EndDate: "2025-06-02"})
		require.NoError(t, err)
		assert.Equal(t, 1, got.DaysRequested)
		assert.True(t, got.IsPaid)
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, emp.ID, got.AccountID)
	})

	t.Run("unpaid range", func(t *testing.T) {
		got, err := svc.Apply(ctx, leave.CreateLeaveRequest{LeaveType: "unpaid", StartDate: "2025-06-10", EndDate: "2025-06-14"})
		require.NoError(t, err)
		assert.Equal(t, 5, got.DaysRequested)
		assert.False(t, got.IsPaid)
	})

	t.Run("backdated", func(t *testing.T) {
		_, err := svc.Apply(ctx, leave.CreateLeaveRequest{LeaveType: "paid", StartDate: "2025-06-01", EndDate: "2025-06-03"})
		assert.ErrorIs(t, err, leave.ErrBackdatedLeave)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.Apply(ctx, leave.CreateLeaveRequest{LeaveType: "paid", StartDate: "2025-06-05", EndDate: "2025-06-04"})
		assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := svc.Apply(ctx, leave.CreateLeaveRequest{LeaveType: "holiday", StartDate: "tomorrow"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 3)
	})

	t.Run("no session", func(t *testing.T) {
		_, err := svc.Apply(context.Background(), leave.CreateLeaveRequest{LeaveType: "sick", StartDate: "2025-06-02", EndDate: "2025-06-02"})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	svc, store := newTestLeaveService(t)
	emp := seedAccount(t, store, "emp@dayflow.io", "DFEM20250001", user.RoleEmployee)
	hr := seedAccount(t, store, "hr@dayflow.io", "DFHR20250001", user.RoleHR)

	applied, err := svc.Apply(asAccount(emp), leave.CreateLeaveRequest{LeaveType: "paid", StartDate: "2025-06-05", EndDate: "2025-06-06"})
	require.NoError(t, err)

	_, err = svc.Decide(asAccount(emp), applied.ID, leave.LeaveRequestStatusApproved)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	_, err = svc.Decide(asAccount(hr), applied.ID, leave.LeaveRequestStatusPending)
	assert.ErrorIs(t, err, leave.ErrInvalidOutcome)

	decided, err := svc.Decide(asAccount(hr), applied.ID, leave.LeaveRequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.ApproverID)
	assert.Equal(t, hr.ID, *decided.ApproverID)
	require.NotNil(t, decided.DecidedAt)
	assert.True(t, testNow.Equal(*decided.DecidedAt))

	_, err = svc.Decide(asAccount(hr), applied.ID, leave.LeaveRequestStatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "already approved", err.Error())

	_, err = svc.Decide(asAccount(hr), 9999, leave.LeaveRequestStatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_Listing(t *testing.T) {
	svc, store := newTestLeaveService(t)
	alice := seedAccount(t, store, "alice@dayflow.io", "DFAL20250001", user.RoleEmployee)
	bob := seedAccount(t, store, "bob@dayflow.io", "DFBO20250001", user.RoleEmployee)
	admin := seedAccount(t, store, "admin@dayflow.io", "DFAD20250001", user.RoleAdmin)

	a1, err := svc.Apply(asAccount(alice), leave.CreateLeaveRequest{LeaveType: "paid", StartDate: "2025-06-05", EndDate: "2025-06-05"})
	require.NoError(t, err)
	_, err = svc.Apply(asAccount(alice), leave.CreateLeaveRequest{LeaveType: "sick", StartDate: "2025-06-09", EndDate: "2025-06-09"})
	require.NoError(t, err)
	b1, err := svc.Apply(asAccount(bob), leave.CreateLeaveRequest{LeaveType: "unpaid", StartDate: "2025-06-12", EndDate: "2025-06-13"})
	require.NoError(t, err)

	_, err = svc.Decide(asAccount(admin), a1.ID, leave.LeaveRequestStatusRejected)
	require.NoError(t, err)

	mine, err := svc.ListMine(asAccount(alice), leave.ListLeaveRequest{})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, alice.ID, r.AccountID)
	}

	rejected, err := svc.ListMine(asAccount(alice), leave.ListLeaveRequest{Status: "rejected"})
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, a1.ID, rejected[0].ID)

	_, err = svc.ListMine(asAccount(alice), leave.ListLeaveRequest{Status: "cancelled"})
	assert.Error(t, err)

	pending, err := svc.ListPending(asAccount(admin))
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	all, err := svc.ListAll(asAccount(admin), leave.ListLeaveRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.ListPending(asAccount(bob))
	assert.ErrorIs(t, err, auth.ErrForbidden)

	t.Run("get as owner", func(t *testing.T) {
		got, err := svc.Get(asAccount(bob), b1.ID)
		require.NoError(t, err)
		require.NotNil(t, got.EmployeeCode)
		assert.Equal(t, "DFBO20250001", *got.EmployeeCode)
	})

	t.Run("get as other employee", func(t *testing.T) {
		_, err := svc.Get(asAccount(alice), b1.ID)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("get as admin", func(t *testing.T) {
		_, err := svc.Get(asAccount(admin), b1.ID)
		assert.NoError(t, err)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := svc.Get(asAccount(admin), 9999)
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}
