package auth

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrInvalidCredentials       = apperror.Authentication("invalid credentials")
	ErrInvalidToken             = apperror.Authentication("invalid or expired token")
	ErrForbidden                = apperror.Authorization("insufficient permissions")
	ErrCurrentPasswordIncorrect = apperror.Validation("current password is incorrect")
)
