package leave

import (
	"context"
	"time"
)

type LeaveRequestFilter struct {
	AccountID *int64
	Status    *LeaveRequestStatus
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	// List returns requests newest first with employee code and name joined.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	// ListApprovedOverlapping returns approved requests sharing a date with
	// [start, end]. A nil accountID means every account.
	ListApprovedOverlapping(ctx context.Context, accountID *int64, start, end time.Time) ([]LeaveRequest, error)
	// Decide applies the terminal status only while the row is still pending
	// and returns ErrLeaveRequestAlreadyProcessed otherwise.
	Decide(ctx context.Context, id int64, status LeaveRequestStatus, approverID int64, at time.Time) (LeaveRequest, error)
}
