package payroll

import "context"

type PayrollService interface {
	GetSalary(ctx context.Context, accountID int64) (Breakdown, error)
	UpdateSalary(ctx context.Context, accountID int64, req UpdateSalaryRequest) (Breakdown, error)
}
