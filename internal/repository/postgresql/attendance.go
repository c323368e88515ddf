package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, account_id, attendance_date, check_in, check_out, remarks, created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.AccountID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Remarks,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// CheckIn implements attendance.AttendanceRepository. The unique
// (account_id, attendance_date) key makes concurrent check-ins resolve to a
// single winner; the loser sees no returned row.
func (r *attendanceRepositoryImpl) CheckIn(ctx context.Context, accountID int64, date time.Time, at time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (account_id, attendance_date, check_in)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT attendance_account_date_key DO UPDATE
			SET check_in = EXCLUDED.check_in, updated_at = NOW()
			WHERE attendance.check_in IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, accountID, date, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check in account %d: %w", accountID, err)
	}
	return a, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, id int64, at time.Time, remarks *string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out = $2, remarks = COALESCE($3, remarks), updated_at = NOW()
		WHERE id = $1 AND check_in IS NOT NULL AND check_out IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, id, at, remarks))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, fmt.Errorf("failed to check out attendance %d: %w", id, err)
	}

	// Nothing matched: report why.
	current, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendance WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance %d: %w", id, err)
	}
	if !current.HasCheckIn() {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
}

// GetByAccountAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByAccountAndDate(ctx context.Context, accountID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE account_id = $1 AND attendance_date = $2`
	a, err := scanAttendance(q.QueryRow(ctx, query, accountID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

// ListByAccount implements attendance.AttendanceRepository. Records come
// back newest first.
func (r *attendanceRepositoryImpl) ListByAccount(ctx context.Context, accountID int64, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE account_id = $1`
	args := []interface{}{accountID}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND attendance_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND attendance_date <= $%d", len(args))
	}
	query += ` ORDER BY attendance_date DESC`

	return r.list(ctx, query, args...)
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE attendance_date = $1 ORDER BY account_id`
	return r.list(ctx, query, date)
}

func (r *attendanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}
