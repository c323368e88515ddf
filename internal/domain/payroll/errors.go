package payroll

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrSalaryStructureNotFound = apperror.NotFound("salary structure not found")
	ErrEmployeeNotFound        = apperror.NotFound("employee not found")
)
