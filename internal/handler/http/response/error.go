package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/pkg/apperror"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses by kind
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	message := apperror.MessageOf(err)
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		BadRequest(w, message, nil)
	case apperror.KindAuthentication:
		Unauthorized(w, message)
	case apperror.KindAuthorization:
		Forbidden(w, message)
	case apperror.KindNotFound:
		NotFound(w, message)
	case apperror.KindConflict:
		Conflict(w, message)
	default:
		slog.Error("unexpected error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
