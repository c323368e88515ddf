package apperror

import "errors"

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindIntegrity Kind = iota // store failure or anything unclassified
	KindValidation
	KindAuthentication
	KindAuthorization
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "integrity"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps err reachable through errors.Is while replacing the message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error     { return New(KindValidation, message) }
func Authentication(message string) *Error { return New(KindAuthentication, message) }
func Authorization(message string) *Error  { return New(KindAuthorization, message) }
func Conflict(message string) *Error       { return New(KindConflict, message) }
func NotFound(message string) *Error       { return New(KindNotFound, message) }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindIntegrity
}

// MessageOf returns the client-facing message of the first *Error in err's chain.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return ""
}
