package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const salaryStructureColumns = `id, employee_code, monthly_wage,
	basic_percent, hra_percent, da_percent, bonus_percent, lta_percent, pf_percent, professional_tax,
	created_at, updated_at`

type salaryStructureRepositoryImpl struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepositoryImpl{db: db}
}

func scanSalaryStructure(row pgx.Row) (payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeCode, &s.MonthlyWage,
		&s.Config.BasicPercent, &s.Config.HRAPercent, &s.Config.DAPercent, &s.Config.BonusPercent,
		&s.Config.LTAPercent, &s.Config.PFPercent, &s.Config.ProfessionalTax,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByEmployeeCode implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE employee_code = $1`
	s, err := scanSalaryStructure(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure for %s: %w", employeeCode, err)
	}
	return s, nil
}

// Upsert implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepositoryImpl) Upsert(ctx context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			employee_code, monthly_wage,
			basic_percent, hra_percent, da_percent, bonus_percent, lta_percent, pf_percent, professional_tax
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT ON CONSTRAINT salary_structures_employee_code_key DO UPDATE SET
			monthly_wage = EXCLUDED.monthly_wage,
			basic_percent = EXCLUDED.basic_percent,
			hra_percent = EXCLUDED.hra_percent,
			da_percent = EXCLUDED.da_percent,
			bonus_percent = EXCLUDED.bonus_percent,
			lta_percent = EXCLUDED.lta_percent,
			pf_percent = EXCLUDED.pf_percent,
			professional_tax = EXCLUDED.professional_tax,
			updated_at = NOW()
		RETURNING ` + salaryStructureColumns

	saved, err := scanSalaryStructure(q.QueryRow(ctx, query,
		s.EmployeeCode, s.MonthlyWage,
		s.Config.BasicPercent, s.Config.HRAPercent, s.Config.DAPercent, s.Config.BonusPercent,
		s.Config.LTAPercent, s.Config.PFPercent, s.Config.ProfessionalTax,
	))
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to upsert salary structure for %s: %w", s.EmployeeCode, err)
	}
	return saved, nil
}
