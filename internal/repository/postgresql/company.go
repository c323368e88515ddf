package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository. The singleton index rejects a
// second company.
func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company (name, prefix)
		VALUES ($1, $2)
		RETURNING id, name, prefix, created_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query, c.Name, c.Prefix).Scan(
		&created.ID,
		&created.Name,
		&created.Prefix,
		&created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "company_singleton_key") {
			return company.Company{}, company.ErrCompanyExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// Get implements company.CompanyRepository.
func (r *companyRepositoryImpl) Get(ctx context.Context) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	var c company.Company
	err := q.QueryRow(ctx, `SELECT id, name, prefix, created_at FROM company ORDER BY id LIMIT 1`).Scan(
		&c.ID,
		&c.Name,
		&c.Prefix,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}
