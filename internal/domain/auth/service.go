package auth

import (
	"context"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
)

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context) (employee.EmployeeDetailResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	IssueToken(claims Claims) (token string, expiresAt int64, err error)
}
