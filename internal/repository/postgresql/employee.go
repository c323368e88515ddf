package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const profileColumns = `p.id, p.account_id, p.first_name, p.last_name, p.phone, p.address, p.department,
	p.job_title, p.profile_picture_url, p.join_date, p.date_of_birth, p.gender,
	p.about, p.skills, p.certifications,
	p.nationality, p.marital_status, p.pan_number, p.uan_number, p.bank_account, p.ifsc_code,
	p.base_wage, p.created_at, p.updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func profileDest(p *employee.Profile) []interface{} {
	return []interface{}{
		&p.ID, &p.AccountID, &p.FirstName, &p.LastName, &p.Phone, &p.Address, &p.Department,
		&p.JobTitle, &p.ProfilePictureURL, &p.JoinDate, &p.DateOfBirth, &p.Gender,
		&p.About, &p.Skills, &p.Certifications,
		&p.Nationality, &p.MaritalStatus, &p.PANNumber, &p.UANNumber, &p.BankAccount, &p.IFSCCode,
		&p.BaseWage, &p.CreatedAt, &p.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// CreateProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CreateProfile(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH p AS (
			INSERT INTO employee_profiles (
				account_id, first_name, last_name, phone, address, department,
				job_title, profile_picture_url, join_date, date_of_birth, gender,
				about, skills, certifications,
				nationality, marital_status, pan_number, uan_number, bank_account, ifsc_code,
				base_wage
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			RETURNING *
		)
		SELECT ` + profileColumns + ` FROM p`

	var created employee.Profile
	err := q.QueryRow(ctx, query,
		profile.AccountID,
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Address,
		profile.Department,
		profile.JobTitle,
		profile.ProfilePictureURL,
		profile.JoinDate,
		profile.DateOfBirth,
		profile.Gender,
		profile.About,
		nonNil(profile.Skills),
		nonNil(profile.Certifications),
		profile.Nationality,
		profile.MaritalStatus,
		profile.PANNumber,
		profile.UANNumber,
		profile.BankAccount,
		profile.IFSCCode,
		profile.BaseWage,
	).Scan(profileDest(&created)...)
	if err != nil {
		if isUniqueViolation(err, "employee_profiles_account_id_key") {
			return employee.Profile{}, employee.ErrProfileExists
		}
		return employee.Profile{}, fmt.Errorf("failed to create employee profile: %w", err)
	}
	return created, nil
}

// GetProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetProfile(ctx context.Context, accountID int64) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM employee_profiles p WHERE p.account_id = $1`

	var p employee.Profile
	if err := q.QueryRow(ctx, query, accountID).Scan(profileDest(&p)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrEmployeeNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee profile for account %d: %w", accountID, err)
	}
	return p, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.email, a.employee_code, a.password_hash, a.role, a.is_verified,
			a.last_login, a.created_at, a.updated_at,
			` + profileColumns + `
		FROM accounts a
		JOIN employee_profiles p ON p.account_id = a.id`
	var args []interface{}
	if filter.ExcludeRole != nil {
		query += ` WHERE a.role <> $1`
		args = append(args, *filter.ExcludeRole)
	}
	query += ` ORDER BY a.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		dest := append([]interface{}{
			&e.Account.ID,
			&e.Account.Email,
			&e.Account.EmployeeCode,
			&e.Account.PasswordHash,
			&e.Account.Role,
			&e.Account.IsVerified,
			&e.Account.LastLogin,
			&e.Account.CreatedAt,
			&e.Account.UpdatedAt,
		}, profileDest(&e.Profile)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

type columnValue struct {
	column string
	value  interface{}
}

func profileUpdates(u employee.ProfileUpdate) []columnValue {
	var updates []columnValue
	add := func(column string, set bool, value interface{}) {
		if set {
			updates = append(updates, columnValue{column, value})
		}
	}

	add("first_name", u.FirstName != nil, u.FirstName)
	add("last_name", u.LastName != nil, u.LastName)
	add("phone", u.Phone != nil, u.Phone)
	add("address", u.Address != nil, u.Address)
	add("profile_picture_url", u.ProfilePictureURL != nil, u.ProfilePictureURL)
	add("department", u.Department != nil, u.Department)
	add("job_title", u.JobTitle != nil, u.JobTitle)
	add("date_of_birth", u.DateOfBirth != nil, u.DateOfBirth)
	add("gender", u.Gender != nil, u.Gender)
	add("about", u.About != nil, u.About)
	if u.Skills != nil {
		updates = append(updates, columnValue{"skills", nonNil(*u.Skills)})
	}
	if u.Certifications != nil {
		updates = append(updates, columnValue{"certifications", nonNil(*u.Certifications)})
	}
	add("nationality", u.Nationality != nil, u.Nationality)
	add("marital_status", u.MaritalStatus != nil, u.MaritalStatus)
	add("pan_number", u.PANNumber != nil, u.PANNumber)
	add("uan_number", u.UANNumber != nil, u.UANNumber)
	add("bank_account", u.BankAccount != nil, u.BankAccount)
	add("ifsc_code", u.IFSCCode != nil, u.IFSCCode)
	return updates
}

// UpdateProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, accountID int64, update employee.ProfileUpdate) error {
	updates := profileUpdates(update)
	if len(updates) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+1)
	for i, u := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", u.column, i+1))
		args = append(args, u.value)
	}
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, accountID)

	sql := fmt.Sprintf("UPDATE employee_profiles SET %s WHERE account_id = $%d",
		strings.Join(setClauses, ", "), len(args))
	return r.execProfile(ctx, accountID, sql, args...)
}

// UpdateBaseWage implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateBaseWage(ctx context.Context, accountID int64, wage decimal.Decimal) error {
	return r.execProfile(ctx, accountID,
		`UPDATE employee_profiles SET base_wage = $1, updated_at = NOW() WHERE account_id = $2`,
		wage, accountID,
	)
}

func (r *employeeRepositoryImpl) execProfile(ctx context.Context, accountID int64, sql string, args ...interface{}) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee profile for account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
