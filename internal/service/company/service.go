package company

import (
	"context"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companies company.CompanyRepository
}

func NewCompanyService(companies company.CompanyRepository) *CompanyServiceImpl {
	return &CompanyServiceImpl{companies: companies}
}

// GetMine implements company.CompanyService.
func (s *CompanyServiceImpl) GetMine(ctx context.Context) (company.Company, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return company.Company{}, err
	}
	if err := auth.Authorize(claims, auth.OperationCompanyView); err != nil {
		return company.Company{}, err
	}
	return s.companies.Get(ctx)
}
