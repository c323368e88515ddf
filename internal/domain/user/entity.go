package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Created at company signup
	RoleHR       Role = "hr"       // Same privileges as admin
	RoleEmployee Role = "employee" // Self-service only
)

var Roles = []Role{RoleAdmin, RoleHR, RoleEmployee}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

// IsPrivileged reports whether r may run administrative operations.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleHR
}

type Account struct {
	ID           int64
	Email        string
	EmployeeCode string
	PasswordHash string
	Role         Role
	IsVerified   bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
