package employee

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.NotFound("employee not found")
	ErrProfileExists    = apperror.Conflict("profile already exists for this account")
)
