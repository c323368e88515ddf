package payroll

import "github.com/shopspring/decimal"

type Breakdown struct {
	EmployeeCode string `json:"employee_id,omitempty"`
	Source       Source `json:"source"`

	MonthlyWage decimal.Decimal `json:"monthly_wage"`
	YearlyWage  decimal.Decimal `json:"yearly_wage"`

	BasicPercent    decimal.Decimal `json:"basic_percent"`
	HRAPercent      decimal.Decimal `json:"hra_percent"`
	DAPercent       decimal.Decimal `json:"da_percent"`
	BonusPercent    decimal.Decimal `json:"bonus_percent"`
	LTAPercent      decimal.Decimal `json:"lta_percent"`
	PFPercent       decimal.Decimal `json:"pf_percent"`
	ProfessionalTax decimal.Decimal `json:"prof_tax"`

	BasicAmount    decimal.Decimal `json:"basic_amount"`
	HRAAmount      decimal.Decimal `json:"hra_amount"`
	DAAmount       decimal.Decimal `json:"da_amount"`
	BonusAmount    decimal.Decimal `json:"bonus_amount"`
	LTAAmount      decimal.Decimal `json:"lta_amount"`
	FixedAllowance decimal.Decimal `json:"fixed_allowance"`
	PFEmployee     decimal.Decimal `json:"pf_employee"`
	PFEmployer     decimal.Decimal `json:"pf_employer"`
	NetSalary      decimal.Decimal `json:"net_salary"`
}

var (
	hundred        = decimal.NewFromInt(100)
	monthsPerYear  = decimal.NewFromInt(12)
	moneyPrecision = int32(2)
)

func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// ComputeBreakdown derives every salary component from wage and cfg.
// Intermediate values keep full precision; outputs are rounded to cents.
func ComputeBreakdown(wage decimal.Decimal, cfg SalaryConfig) Breakdown {
	basic := percentOf(wage, cfg.BasicPercent)
	hra := percentOf(basic, cfg.HRAPercent)
	da := percentOf(basic, cfg.DAPercent)
	bonus := percentOf(basic, cfg.BonusPercent)
	lta := percentOf(basic, cfg.LTAPercent)

	fixed := wage.Sub(basic.Add(hra).Add(da).Add(bonus).Add(lta))
	if fixed.IsNegative() {
		fixed = decimal.Zero
	}

	pf := percentOf(basic, cfg.PFPercent)
	net := wage.Sub(pf).Sub(cfg.ProfessionalTax)

	return Breakdown{
		MonthlyWage: wage.Round(moneyPrecision),
		YearlyWage:  wage.Mul(monthsPerYear).Round(moneyPrecision),

		BasicPercent:    cfg.BasicPercent,
		HRAPercent:      cfg.HRAPercent,
		DAPercent:       cfg.DAPercent,
		BonusPercent:    cfg.BonusPercent,
		LTAPercent:      cfg.LTAPercent,
		PFPercent:       cfg.PFPercent,
		ProfessionalTax: cfg.ProfessionalTax,

		BasicAmount:    basic.Round(moneyPrecision),
		HRAAmount:      hra.Round(moneyPrecision),
		DAAmount:       da.Round(moneyPrecision),
		BonusAmount:    bonus.Round(moneyPrecision),
		LTAAmount:      lta.Round(moneyPrecision),
		FixedAllowance: fixed.Round(moneyPrecision),
		PFEmployee:     pf.Round(moneyPrecision),
		PFEmployer:     pf.Round(moneyPrecision),
		NetSalary:      net.Round(moneyPrecision),
	}
}
