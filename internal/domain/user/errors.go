package user

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrAccountNotFound    = apperror.NotFound("user not found")
	ErrEmailExists        = apperror.Conflict("email already registered")
	ErrEmployeeCodeExists = apperror.Conflict("employee code already exists")
)
