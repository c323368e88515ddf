package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	tx        database.Transactor
	accounts  user.AccountRepository
	employees employee.EmployeeRepository
	salaries  payroll.SalaryStructureRepository
}

func NewPayrollService(
	tx database.Transactor,
	accounts user.AccountRepository,
	employees employee.EmployeeRepository,
	salaries payroll.SalaryStructureRepository,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		tx:        tx,
		accounts:  accounts,
		employees: employees,
		salaries:  salaries,
	}
}

// GetSalary implements payroll.PayrollService. Without a stored structure the
// profile's base wage is broken down with the default percentages.
func (s *PayrollServiceImpl) GetSalary(ctx context.Context, accountID int64) (payroll.Breakdown, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return payroll.Breakdown{}, err
	}
	if err := auth.Authorize(claims, auth.OperationSalaryView, accountID); err != nil {
		return payroll.Breakdown{}, err
	}

	account, err := s.account(ctx, accountID)
	if err != nil {
		return payroll.Breakdown{}, err
	}
	profile, err := s.employees.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.Breakdown{}, payroll.ErrEmployeeNotFound
		}
		return payroll.Breakdown{}, err
	}

	var stored *payroll.SalaryStructure
	structure, err := s.salaries.GetByEmployeeCode(ctx, account.EmployeeCode)
	switch {
	case err == nil:
		stored = &structure
	case !errors.Is(err, payroll.ErrSalaryStructureNotFound):
		return payroll.Breakdown{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	wage, cfg, source := payroll.ResolveStructure(stored, profile.BaseWage)
	breakdown := payroll.ComputeBreakdown(wage, cfg)
	breakdown.EmployeeCode = account.EmployeeCode
	breakdown.Source = source
	return breakdown, nil
}

// UpdateSalary implements payroll.PayrollService. The profile's base wage is
// kept equal to the structure's monthly wage.
func (s *PayrollServiceImpl) UpdateSalary(ctx context.Context, accountID int64, req payroll.UpdateSalaryRequest) (payroll.Breakdown, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return payroll.Breakdown{}, err
	}
	if err := auth.Authorize(claims, auth.OperationSalaryUpdate); err != nil {
		return payroll.Breakdown{}, err
	}
	if err := req.Validate(); err != nil {
		return payroll.Breakdown{}, err
	}

	account, err := s.account(ctx, accountID)
	if err != nil {
		return payroll.Breakdown{}, err
	}

	var saved payroll.SalaryStructure
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.salaries.Upsert(ctx, payroll.SalaryStructure{
			EmployeeCode: account.EmployeeCode,
			MonthlyWage:  *req.MonthlyWage,
			Config:       req.Config(),
		})
		if err != nil {
			return err
		}
		if err := s.employees.UpdateBaseWage(ctx, accountID, saved.MonthlyWage); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return payroll.ErrEmployeeNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return payroll.Breakdown{}, err
	}

	breakdown := payroll.ComputeBreakdown(saved.MonthlyWage, saved.Config)
	breakdown.EmployeeCode = saved.EmployeeCode
	breakdown.Source = payroll.SourceConfigured
	return breakdown, nil
}

func (s *PayrollServiceImpl) account(ctx context.Context, accountID int64) (user.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return user.Account{}, payroll.ErrEmployeeNotFound
		}
		return user.Account{}, err
	}
	return account, nil
}
