package company

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrCompanyNotFound = apperror.NotFound("company not found")
	ErrCompanyExists   = apperror.Conflict("company already registered")
)
