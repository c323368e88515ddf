package leave

import (
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

// IsPaid reports whether leave of this type is paid.
func (t LeaveType) IsPaid() bool {
	return t != LeaveTypeUnpaid
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

func (s LeaveRequestStatus) IsValid() bool {
	switch s {
	case LeaveRequestStatusPending, LeaveRequestStatusApproved, LeaveRequestStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// LeaveRequest entity
type LeaveRequest struct {
	ID            int64
	AccountID     int64
	Type          LeaveType
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	IsPaid        bool
	Description   *string

	Status     LeaveRequestStatus
	ApproverID *int64
	DecidedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeCode *string
	EmployeeName *string
}

// NewLeaveRequest builds a pending request, rejecting inverted or backdated ranges.
func NewLeaveRequest(accountID int64, leaveType LeaveType, start, end time.Time, description *string, today time.Time) (LeaveRequest, error) {
	if !leaveType.IsValid() {
		return LeaveRequest{}, ErrInvalidLeaveType
	}
	start, end, today = datetime.DateOf(start), datetime.DateOf(end), datetime.DateOf(today)
	if start.After(end) {
		return LeaveRequest{}, ErrInvalidDateRange
	}
	if start.Before(today) {
		return LeaveRequest{}, ErrBackdatedLeave
	}

	return LeaveRequest{
		AccountID:     accountID,
		Type:          leaveType,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: datetime.DaysInclusive(start, end),
		IsPaid:        leaveType.IsPaid(),
		Description:   description,
		Status:        LeaveRequestStatusPending,
	}, nil
}

// Decide moves a pending request to outcome.
func (l *LeaveRequest) Decide(outcome LeaveRequestStatus, approverID int64, at time.Time) error {
	if !outcome.IsTerminal() {
		return ErrInvalidOutcome
	}
	if l.Status != LeaveRequestStatusPending {
		return AlreadyDecided(l.Status)
	}
	l.Status = outcome
	l.ApproverID = &approverID
	l.DecidedAt = &at
	l.UpdatedAt = at
	return nil
}

// Overlaps reports whether the request shares at least one date with [start, end].
func (l LeaveRequest) Overlaps(start, end time.Time) bool {
	return !l.StartDate.After(datetime.DateOf(end)) && !l.EndDate.Before(datetime.DateOf(start))
}
