package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, email, employee_code, password_hash, role, is_verified, last_login, created_at, updated_at`

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) user.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func scanAccount(row pgx.Row) (user.Account, error) {
	var a user.Account
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.EmployeeCode,
		&a.PasswordHash,
		&a.Role,
		&a.IsVerified,
		&a.LastLogin,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements user.AccountRepository.
func (r *accountRepositoryImpl) Create(ctx context.Context, account user.Account) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (email, employee_code, password_hash, role, is_verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + accountColumns

	created, err := scanAccount(q.QueryRow(ctx, query,
		account.Email,
		account.EmployeeCode,
		account.PasswordHash,
		account.Role,
		account.IsVerified,
	))
	if err != nil {
		switch {
		case isUniqueViolation(err, "accounts_email_key"):
			return user.Account{}, user.ErrEmailExists
		case isUniqueViolation(err, "accounts_employee_code_key"):
			return user.Account{}, user.ErrEmployeeCodeExists
		}
		return user.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

func (r *accountRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	a, err := scanAccount(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Account{}, user.ErrAccountNotFound
		}
		return user.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// GetByID implements user.AccountRepository.
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id int64) (user.Account, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByEmail implements user.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.Account, error) {
	return r.getOne(ctx, "email = $1", email)
}

// GetByEmployeeCode implements user.AccountRepository.
func (r *accountRepositoryImpl) GetByEmployeeCode(ctx context.Context, code string) (user.Account, error) {
	return r.getOne(ctx, "employee_code = $1", code)
}

// ExistsByEmail implements user.AccountRepository.
func (r *accountRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CountByEmployeeCodePrefix implements user.AccountRepository.
func (r *accountRepositoryImpl) CountByEmployeeCodePrefix(ctx context.Context, prefix string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE starts_with(employee_code, $1)`,
		prefix,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employee codes: %w", err)
	}
	return count, nil
}

// UpdateLastLogin implements user.AccountRepository.
func (r *accountRepositoryImpl) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.exec(ctx, `UPDATE accounts SET last_login = $1, updated_at = NOW() WHERE id = $2`, at, id)
}

// UpdatePassword implements user.AccountRepository.
func (r *accountRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.exec(ctx, `UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
}

func (r *accountRepositoryImpl) exec(ctx context.Context, query string, args ...interface{}) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrAccountNotFound
	}
	return nil
}
