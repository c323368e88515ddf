package leave

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrLeaveRequestNotFound         = apperror.NotFound("leave request not found")
	ErrLeaveRequestAlreadyProcessed = apperror.Conflict("leave request already processed")
	ErrInvalidDateRange             = apperror.Validation("start date must be before or equal to end date")
	ErrBackdatedLeave               = apperror.Validation("cannot apply for leave in the past")
	ErrInvalidLeaveType             = apperror.Validation("leave type must be one of paid, sick, unpaid")
	ErrInvalidOutcome               = apperror.Validation("outcome must be approved or rejected")
)

// AlreadyDecided reports a decision attempt on a request that is no longer pending.
func AlreadyDecided(status LeaveRequestStatus) error {
	return apperror.Wrap(apperror.KindConflict, "already "+string(status), ErrLeaveRequestAlreadyProcessed)
}
