package employee

import (
	"context"
)

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	Get(ctx context.Context, accountID int64) (EmployeeDetailResponse, error)
	Update(ctx context.Context, accountID int64, req UpdateEmployeeRequest) error
}
