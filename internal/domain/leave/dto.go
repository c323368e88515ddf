package leave

import (
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/datetime"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, sick, unpaid",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if r.Description != nil && len(*r.Description) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListLeaveRequest struct {
	Status string
}

func (r *ListLeaveRequest) Validate() error {
	if r.Status == "" || LeaveRequestStatus(r.Status).IsValid() {
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "status",
		Message: "status must be one of pending, approved, rejected",
	}}
}

// StatusFilter returns nil when no status was given.
func (r *ListLeaveRequest) StatusFilter() *LeaveRequestStatus {
	if r.Status == "" {
		return nil
	}
	s := LeaveRequestStatus(r.Status)
	return &s
}

type LeaveRequestResponse struct {
	ID            int64      `json:"leave_id"`
	AccountID     int64      `json:"user_id"`
	EmployeeCode  *string    `json:"employee_id,omitempty"`
	EmployeeName  *string    `json:"employee_name,omitempty"`
	LeaveType     string     `json:"leave_type"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	DaysRequested int        `json:"days_requested"`
	IsPaid        bool       `json:"is_paid"`
	Description   *string    `json:"description,omitempty"`
	Status        string     `json:"status"`
	ApproverID    *int64     `json:"approver_id,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            l.ID,
		AccountID:     l.AccountID,
		EmployeeCode:  l.EmployeeCode,
		EmployeeName:  l.EmployeeName,
		LeaveType:     string(l.Type),
		StartDate:     datetime.FormatDate(l.StartDate),
		EndDate:       datetime.FormatDate(l.EndDate),
		DaysRequested: l.DaysRequested,
		IsPaid:        l.IsPaid,
		Description:   l.Description,
		Status:        string(l.Status),
		ApproverID:    l.ApproverID,
		DecidedAt:     l.DecidedAt,
		CreatedAt:     l.CreatedAt,
	}
}

func NewLeaveRequestResponses(list []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(list))
	for _, l := range list {
		out = append(out, NewLeaveRequestResponse(l))
	}
	return out
}
