package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryConfig holds the percentage knobs of a salary structure. HRA, DA,
// bonus, LTA and PF are percentages of basic; basic is a percentage of the
// monthly wage; ProfessionalTax is a flat monthly amount.
type SalaryConfig struct {
	BasicPercent    decimal.Decimal
	HRAPercent      decimal.Decimal
	DAPercent       decimal.Decimal
	BonusPercent    decimal.Decimal
	LTAPercent      decimal.Decimal
	PFPercent       decimal.Decimal
	ProfessionalTax decimal.Decimal
}

func DefaultSalaryConfig() SalaryConfig {
	return SalaryConfig{
		BasicPercent:    decimal.NewFromInt(50),
		HRAPercent:      decimal.NewFromInt(50),
		DAPercent:       decimal.RequireFromString("4.17"),
		BonusPercent:    decimal.RequireFromString("8.33"),
		LTAPercent:      decimal.RequireFromString("8.33"),
		PFPercent:       decimal.NewFromInt(12),
		ProfessionalTax: decimal.NewFromInt(200),
	}
}

// SalaryStructure is the persisted configuration of one employee, keyed by employee code.
type SalaryStructure struct {
	ID           int64
	EmployeeCode string
	MonthlyWage  decimal.Decimal
	Config       SalaryConfig
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Source names where a breakdown's inputs came from.
type Source string

const (
	SourceConfigured Source = "configured"
	SourceDefault    Source = "default"
)

// ResolveStructure picks the inputs for an employee's breakdown. Without a
// stored structure the profile's base wage is used with DefaultSalaryConfig,
// and a missing base wage counts as zero.
func ResolveStructure(stored *SalaryStructure, baseWage decimal.NullDecimal) (decimal.Decimal, SalaryConfig, Source) {
	if stored != nil {
		return stored.MonthlyWage, stored.Config, SourceConfigured
	}
	wage := decimal.Zero
	if baseWage.Valid {
		wage = baseWage.Decimal
	}
	return wage, DefaultSalaryConfig(), SourceDefault
}
