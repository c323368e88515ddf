package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	// Get returns the deployment's company or ErrCompanyNotFound.
	Get(ctx context.Context) (Company, error)
}
