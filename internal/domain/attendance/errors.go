package attendance

import "github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"

var (
	ErrAttendanceNotFound = apperror.NotFound("attendance record not found")
	ErrAlreadyCheckedIn   = apperror.Conflict("already checked in")
	ErrNotCheckedIn       = apperror.Conflict("not checked in")
	ErrAlreadyCheckedOut  = apperror.Conflict("already checked out")
)
