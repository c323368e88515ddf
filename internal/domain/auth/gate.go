package auth

import (
	"slices"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
)

type Operation string

const (
	// Self management
	OperationProfileViewOwn Operation = "profile.view_own"
	OperationPasswordChange Operation = "password.change"

	// Employee management
	OperationEmployeeList   Operation = "employee.list"
	OperationEmployeeCreate Operation = "employee.create"
	OperationEmployeeView   Operation = "employee.view"
	OperationEmployeeUpdate Operation = "employee.update"
	OperationEmployeeStatus Operation = "employee.status"

	// Attendance
	OperationAttendanceCheck   Operation = "attendance.check"
	OperationAttendanceViewOwn Operation = "attendance.view_own"
	OperationAttendanceViewAll Operation = "attendance.view_all"
	OperationAttendanceStats   Operation = "attendance.stats"

	// Leave
	OperationLeaveApply   Operation = "leave.apply"
	OperationLeaveViewOwn Operation = "leave.view_own"
	OperationLeaveView    Operation = "leave.view"
	OperationLeaveViewAll Operation = "leave.view_all"
	OperationLeaveDecide  Operation = "leave.decide"

	// Salary
	OperationSalaryView   Operation = "salary.view"
	OperationSalaryUpdate Operation = "salary.update"

	// Company
	OperationCompanyView Operation = "company.view"
)

// Capability describes who may run an operation.
type Capability struct {
	// Roles are granted regardless of the target.
	Roles []user.Role
	// SelfScope grants any role when the target belongs to the caller.
	SelfScope bool
}

var (
	privileged = []user.Role{user.RoleAdmin, user.RoleHR}
	everyone   = []user.Role{user.RoleAdmin, user.RoleHR, user.RoleEmployee}
)

// Capabilities is the authorization table consulted by Authorize.
var Capabilities = map[Operation]Capability{
	OperationProfileViewOwn: {Roles: everyone},
	OperationPasswordChange: {Roles: everyone},

	OperationEmployeeList:   {Roles: privileged},
	OperationEmployeeCreate: {Roles: privileged},
	OperationEmployeeView:   {Roles: privileged, SelfScope: true},
	OperationEmployeeUpdate: {Roles: privileged, SelfScope: true},
	OperationEmployeeStatus: {Roles: privileged, SelfScope: true},

	OperationAttendanceCheck:   {Roles: everyone},
	OperationAttendanceViewOwn: {Roles: everyone},
	OperationAttendanceViewAll: {Roles: privileged},
	OperationAttendanceStats:   {Roles: everyone},

	OperationLeaveApply:   {Roles: everyone},
	OperationLeaveViewOwn: {Roles: everyone},
	OperationLeaveView:    {Roles: privileged, SelfScope: true},
	OperationLeaveViewAll: {Roles: privileged},
	OperationLeaveDecide:  {Roles: privileged},

	OperationSalaryView:   {Roles: privileged, SelfScope: true},
	OperationSalaryUpdate: {Roles: privileged},

	OperationCompanyView: {Roles: everyone},
}

// Authorize checks claims against the capability of op. owner is the account
// owning the target resource; omit it for operations without a target.
func Authorize(claims Claims, op Operation, owner ...int64) error {
	capability, ok := Capabilities[op]
	if !ok {
		return ErrForbidden
	}
	if slices.Contains(capability.Roles, claims.Role) {
		return nil
	}
	if capability.SelfScope && claims.Role.IsValid() && len(owner) > 0 && owner[0] == claims.AccountID {
		return nil
	}
	return ErrForbidden
}

// RequireRole fails unless claims carry one of allowed.
func RequireRole(claims Claims, allowed ...user.Role) error {
	if slices.Contains(allowed, claims.Role) {
		return nil
	}
	return ErrForbidden
}

// IsPrivileged reports whether claims belong to an admin or hr account.
func (c Claims) IsPrivileged() bool {
	return c.Role.IsPrivileged()
}
