package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `lr.id, lr.account_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.days_requested, lr.is_paid, lr.description, lr.status, lr.approver_id, lr.decided_at,
	lr.created_at, lr.updated_at`

const leaveRequestSelect = `
	SELECT ` + leaveRequestColumns + `,
		a.employee_code,
		NULLIF(TRIM(COALESCE(p.first_name, '') || ' ' || COALESCE(p.last_name, '')), '')
	FROM leave_requests lr
	LEFT JOIN accounts a ON a.id = lr.account_id
	LEFT JOIN employee_profiles p ON p.account_id = lr.account_id`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func leaveRequestDest(l *leave.LeaveRequest) []interface{} {
	return []interface{}{
		&l.ID, &l.AccountID, &l.Type, &l.StartDate, &l.EndDate,
		&l.DaysRequested, &l.IsPaid, &l.Description, &l.Status, &l.ApproverID, &l.DecidedAt,
		&l.CreatedAt, &l.UpdatedAt,
	}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(append(leaveRequestDest(&l), &l.EmployeeCode, &l.EmployeeName)...)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH lr AS (
			INSERT INTO leave_requests (
				account_id, leave_type, start_date, end_date, days_requested, is_paid, description, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + ` FROM lr`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		request.AccountID,
		request.Type,
		request.StartDate,
		request.EndDate,
		request.DaysRequested,
		request.IsPaid,
		request.Description,
		request.Status,
	).Scan(leaveRequestDest(&created)...)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %d: %w", id, err)
	}
	return l, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var conditions []string
	var args []interface{}
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		conditions = append(conditions, fmt.Sprintf("lr.account_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}

	query := leaveRequestSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY lr.created_at DESC, lr.id DESC"

	return r.list(ctx, query, args...)
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, accountID *int64, start, end time.Time) ([]leave.LeaveRequest, error) {
	query := leaveRequestSelect + ` WHERE lr.status = 'approved' AND lr.start_date <= $1 AND lr.end_date >= $2`
	args := []interface{}{end, start}
	if accountID != nil {
		args = append(args, *accountID)
		query += ` AND lr.account_id = $3`
	}
	query += ` ORDER BY lr.start_date, lr.id`

	return r.list(ctx, query, args...)
}

// Decide implements leave.LeaveRequestRepository. The status guard in the
// WHERE clause lets only the first of two concurrent decisions through.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id int64, status leave.LeaveRequestStatus, approverID int64, at time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH lr AS (
			UPDATE leave_requests
			SET status = $2, approver_id = $3, decided_at = $4, updated_at = $4
			WHERE id = $1 AND status = 'pending'
			RETURNING *
		)
		SELECT ` + leaveRequestColumns + ` FROM lr`

	var decided leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, status, approverID, at).Scan(leaveRequestDest(&decided)...)
	if err == nil {
		return decided, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, fmt.Errorf("failed to decide leave request %d: %w", id, err)
	}

	var current leave.LeaveRequestStatus
	err = q.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %d: %w", id, err)
	}
	return leave.LeaveRequest{}, leave.AlreadyDecided(current)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}
