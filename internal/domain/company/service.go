package company

import "context"

type CompanyService interface {
	GetMine(ctx context.Context) (Company, error)
}
