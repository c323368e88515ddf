package auth

import (
	"context"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
)

// Claims is the verified payload of a session token.
type Claims struct {
	AccountID    int64
	Email        string
	EmployeeCode string
	Role         user.Role
	ExpiresAt    time.Time
}

// ClaimsFor builds the claims issued for account.
func ClaimsFor(account user.Account) Claims {
	return Claims{
		AccountID:    account.ID,
		Email:        account.Email,
		EmployeeCode: account.EmployeeCode,
		Role:         account.Role,
	}
}

type claimsKey struct{}

// NewContext returns ctx carrying claims.
func NewContext(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// FromContext returns the session claims attached by the auth middleware,
// or ErrInvalidToken when the request carries none.
func FromContext(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(claimsKey{}).(Claims)
	if !ok || claims.AccountID == 0 {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
