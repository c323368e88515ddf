package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/company"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/employeecode"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/password"
)

const (
	adminDepartment = "Administration"
	adminJobTitle   = "Administrator"
	tokenTypeBearer = "Bearer"
)

type AuthServiceImpl struct {
	tx              database.Transactor
	accounts        user.AccountRepository
	companies       company.CompanyRepository
	employees       employee.EmployeeRepository
	employeeService employee.EmployeeService
	tokens          auth.TokenIssuer
	now             func() time.Time
}

func NewAuthService(
	tx database.Transactor,
	accounts user.AccountRepository,
	companies company.CompanyRepository,
	employees employee.EmployeeRepository,
	employeeService employee.EmployeeService,
	tokens auth.TokenIssuer,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		tx:              tx,
		accounts:        accounts,
		companies:       companies,
		employees:       employees,
		employeeService: employeeService,
		tokens:          tokens,
		now:             time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup implements auth.AuthService.
func (s *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := normalizeEmail(req.AdminEmail)
	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, user.ErrEmailExists
	}

	hash, err := password.Hash(req.AdminPassword)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	today := datetime.DateOf(s.now())
	prefix := strings.ToUpper(strings.TrimSpace(req.CompanyPrefix))
	firstName, lastName := employeecode.SplitName(req.AdminName)

	var account user.Account
	var profile employee.Profile
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.companies.Create(ctx, company.Company{
			Name:   strings.TrimSpace(req.CompanyName),
			Prefix: prefix,
		}); err != nil {
			return err
		}

		stem := employeecode.Stem(prefix, firstName, lastName, today.Year())
		existing, err := s.accounts.CountByEmployeeCodePrefix(ctx, stem)
		if err != nil {
			return err
		}

		account, err = s.accounts.Create(ctx, user.Account{
			Email:        email,
			EmployeeCode: employeecode.Next(stem, existing),
			PasswordHash: hash,
			Role:         user.RoleAdmin,
			IsVerified:   true,
		})
		if err != nil {
			return err
		}

		department, jobTitle := adminDepartment, adminJobTitle
		profile, err = s.employees.CreateProfile(ctx, employee.Profile{
			AccountID:  account.ID,
			FirstName:  firstName,
			LastName:   lastName,
			Phone:      req.AdminPhone,
			Department: &department,
			JobTitle:   &jobTitle,
			JoinDate:   &today,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("company registered", "company_prefix", prefix, "admin_id", account.ID, "employee_code", account.EmployeeCode)
	return s.issue(account, profile)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	var account user.Account
	var err error
	if req.IsEmail() {
		account, err = s.accounts.GetByEmail(ctx, normalizeEmail(req.Identifier))
	} else {
		account, err = s.accounts.GetByEmployeeCode(ctx, req.EmployeeCode())
	}
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up account: %w", err)
	}

	if !password.Verify(req.Password, account.PasswordHash) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.accounts.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to record login: %w", err)
	}
	account.LastLogin = &now

	profile, err := s.employees.GetProfile(ctx, account.ID)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return s.issue(account, profile)
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (employee.EmployeeDetailResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if err := auth.Authorize(claims, auth.OperationProfileViewOwn); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	return s.employeeService.Get(ctx, claims.AccountID)
}

// ChangePassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := auth.Authorize(claims, auth.OperationPasswordChange); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return err
	}
	if !password.Verify(req.CurrentPassword, account.PasswordHash) {
		return auth.ErrCurrentPasswordIncorrect
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.accounts.UpdatePassword(ctx, account.ID, hash)
}

func (s *AuthServiceImpl) issue(account user.Account, profile employee.Profile) (auth.TokenResponse, error) {
	token, expiresAt, err := s.tokens.IssueToken(auth.ClaimsFor(account))
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		User: auth.UserSummary{
			AccountID:         account.ID,
			Email:             account.Email,
			EmployeeCode:      account.EmployeeCode,
			Role:              string(account.Role),
			FirstName:         profile.FirstName,
			LastName:          profile.LastName,
			ProfilePictureURL: profile.ProfilePictureURL,
		},
	}, nil
}
