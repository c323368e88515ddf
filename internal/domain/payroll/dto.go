package payroll

import (
	"fmt"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpdateSalaryRequest leaves omitted knobs at their defaults.
type UpdateSalaryRequest struct {
	MonthlyWage     *decimal.Decimal `json:"monthly_wage"`
	BasicPercent    *decimal.Decimal `json:"basic_percent,omitempty"`
	HRAPercent      *decimal.Decimal `json:"hra_percent,omitempty"`
	DAPercent       *decimal.Decimal `json:"da_percent,omitempty"`
	BonusPercent    *decimal.Decimal `json:"bonus_percent,omitempty"`
	LTAPercent      *decimal.Decimal `json:"lta_percent,omitempty"`
	PFPercent       *decimal.Decimal `json:"pf_percent,omitempty"`
	ProfessionalTax *decimal.Decimal `json:"prof_tax,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlyWage == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_wage",
			Message: "monthly_wage is required",
		})
	}

	// precision and scale follow the salary_structures columns
	fields := []struct {
		name      string
		value     *decimal.Decimal
		precision int32
	}{
		{"monthly_wage", r.MonthlyWage, 12},
		{"basic_percent", r.BasicPercent, 6},
		{"hra_percent", r.HRAPercent, 6},
		{"da_percent", r.DAPercent, 6},
		{"bonus_percent", r.BonusPercent, 6},
		{"lta_percent", r.LTAPercent, 6},
		{"pf_percent", r.PFPercent, 6},
		{"prof_tax", r.ProfessionalTax, 12},
	}
	for _, f := range fields {
		switch {
		case f.value == nil:
		case f.value.IsNegative():
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " must not be negative",
			})
		case !validator.FitsNumeric(*f.value, f.precision, 2):
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("%s must be below %s with at most 2 decimal places", f.name, decimal.New(1, f.precision-2)),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Config fills omitted knobs from DefaultSalaryConfig.
func (r *UpdateSalaryRequest) Config() SalaryConfig {
	cfg := DefaultSalaryConfig()
	pick := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	pick(&cfg.BasicPercent, r.BasicPercent)
	pick(&cfg.HRAPercent, r.HRAPercent)
	pick(&cfg.DAPercent, r.DAPercent)
	pick(&cfg.BonusPercent, r.BonusPercent)
	pick(&cfg.LTAPercent, r.LTAPercent)
	pick(&cfg.PFPercent, r.PFPercent)
	pick(&cfg.ProfessionalTax, r.ProfessionalTax)
	return cfg
}
