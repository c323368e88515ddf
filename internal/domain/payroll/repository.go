package payroll

import "context"

type SalaryStructureRepository interface {
	GetByEmployeeCode(ctx context.Context, employeeCode string) (SalaryStructure, error)
	// Upsert inserts or replaces the structure for s.EmployeeCode.
	Upsert(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
}
