package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/employeecode"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/password"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const temporaryPasswordLength = 12

type EmployeeServiceImpl struct {
	tx             database.Transactor
	accounts       user.AccountRepository
	companies      company.CompanyRepository
	employees      employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	salaries       payroll.SalaryStructureRepository
	defaultPrefix  string
	now            func() time.Time
}

func NewEmployeeService(
	tx database.Transactor,
	accounts user.AccountRepository,
	companies company.CompanyRepository,
	employees employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	salaries payroll.SalaryStructureRepository,
	defaultPrefix string,
) *EmployeeServiceImpl {
	if defaultPrefix == "" {
		defaultPrefix = employeecode.DefaultPrefix
	}
	return &EmployeeServiceImpl{
		tx:             tx,
		accounts:       accounts,
		companies:      companies,
		employees:      employees,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		salaries:       salaries,
		defaultPrefix:  defaultPrefix,
		now:            time.Now,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(claims, auth.OperationEmployeeList); err != nil {
		return nil, err
	}

	today := datetime.DateOf(s.now())
	admin := user.RoleAdmin

	var (
		employees []employee.Employee
		records   []attendance.Attendance
		leaves    []leave.LeaveRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employees.List(gctx, employee.EmployeeFilter{ExcludeRole: &admin})
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListApprovedOverlapping(gctx, nil, today, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	byAccount := make(map[int64]*attendance.Attendance, len(records))
	for i := range records {
		byAccount[records[i].AccountID] = &records[i]
	}
	onLeave := make(map[int64]bool, len(leaves))
	for _, l := range leaves {
		onLeave[l.AccountID] = true
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp := employee.NewEmployeeResponse(e)
		status := attendance.ClassifyDay(byAccount[e.Account.ID], onLeave[e.Account.ID])
		resp.TodayStatus = &status
		out = append(out, resp)
	}
	return out, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	if err := auth.Authorize(claims, auth.OperationEmployeeCreate); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.CreateEmployeeResponse{}, user.ErrEmailExists
	}

	joinDate, err := datetime.ParseDate(req.JoinDate)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	prefix, err := s.companyPrefix(ctx)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	tempPassword, err := password.Generate(temporaryPasswordLength)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := password.Hash(tempPassword)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	firstName, lastName := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
	stem := employeecode.Stem(prefix, firstName, lastName, joinDate.Year())

	var baseWage decimal.NullDecimal
	if req.BaseSalary != nil {
		baseWage = decimal.NullDecimal{Decimal: *req.BaseSalary, Valid: true}
	}

	var account user.Account
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.accounts.CountByEmployeeCodePrefix(ctx, stem)
		if err != nil {
			return err
		}

		account, err = s.accounts.Create(ctx, user.Account{
			Email:        email,
			EmployeeCode: employeecode.Next(stem, existing),
			PasswordHash: hash,
			Role:         req.RoleOrDefault(),
		})
		if err != nil {
			return err
		}

		_, err = s.employees.CreateProfile(ctx, employee.Profile{
			AccountID:  account.ID,
			FirstName:  firstName,
			LastName:   lastName,
			Phone:      req.Phone,
			Department: req.Department,
			JobTitle:   req.JobTitle,
			JoinDate:   &joinDate,
			BaseWage:   baseWage,
		})
		return err
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	slog.Info("employee created", "account_id", account.ID, "employee_code", account.EmployeeCode, "created_by", claims.AccountID)
	return employee.CreateEmployeeResponse{
		AccountID:         account.ID,
		EmployeeCode:      account.EmployeeCode,
		Email:             account.Email,
		TemporaryPassword: tempPassword,
	}, nil
}

func (s *EmployeeServiceImpl) companyPrefix(ctx context.Context) (string, error) {
	c, err := s.companies.Get(ctx)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return s.defaultPrefix, nil
		}
		return "", fmt.Errorf("failed to get company: %w", err)
	}
	if c.Prefix == "" {
		return s.defaultPrefix, nil
	}
	return c.Prefix, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, accountID int64) (employee.EmployeeDetailResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if err := auth.Authorize(claims, auth.OperationEmployeeView, accountID); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	e, err := s.load(ctx, accountID)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	var stored *payroll.SalaryStructure
	structure, err := s.salaries.GetByEmployeeCode(ctx, e.Account.EmployeeCode)
	switch {
	case err == nil:
		stored = &structure
	case !errors.Is(err, payroll.ErrSalaryStructureNotFound):
		return employee.EmployeeDetailResponse{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	wage, cfg, source := payroll.ResolveStructure(stored, e.Profile.BaseWage)
	breakdown := payroll.ComputeBreakdown(wage, cfg)
	breakdown.EmployeeCode = e.Account.EmployeeCode
	breakdown.Source = source

	resp := employee.NewEmployeeDetailResponse(e)
	resp.SalaryStructure = &breakdown
	return resp, nil
}

// Update implements employee.EmployeeService. Non-privileged callers can only
// change their self-service fields; anything else in the request is ignored.
func (s *EmployeeServiceImpl) Update(ctx context.Context, accountID int64, req employee.UpdateEmployeeRequest) error {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := auth.Authorize(claims, auth.OperationEmployeeUpdate, accountID); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.load(ctx, accountID); err != nil {
		return err
	}

	update := req.ToProfileUpdate()
	if !claims.IsPrivileged() {
		update = update.SelfService()
	}
	if update.IsEmpty() {
		return nil
	}
	return s.employees.UpdateProfile(ctx, accountID, update)
}

func (s *EmployeeServiceImpl) load(ctx context.Context, accountID int64) (employee.Employee, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	profile, err := s.employees.GetProfile(ctx, accountID)
	if err != nil {
		return employee.Employee{}, err
	}
	return employee.Employee{Account: account, Profile: profile}, nil
}
