package employee

import (
	"context"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type EmployeeFilter struct {
	ExcludeRole *user.Role
}

type EmployeeRepository interface {
	CreateProfile(ctx context.Context, profile Profile) (Profile, error)
	GetProfile(ctx context.Context, accountID int64) (Profile, error)
	// List joins accounts with their profiles, ordered by account id.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	UpdateProfile(ctx context.Context, accountID int64, update ProfileUpdate) error
	UpdateBaseWage(ctx context.Context, accountID int64, wage decimal.Decimal) error
}
