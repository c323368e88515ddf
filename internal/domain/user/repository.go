package user

import (
	"context"
	"time"
)

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByEmployeeCode(ctx context.Context, code string) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// CountByEmployeeCodePrefix counts codes starting with prefix.
	CountByEmployeeCodePrefix(ctx context.Context, prefix string) (int, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
