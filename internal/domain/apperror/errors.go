// Package apperror defines the error kinds shared by repositories, services
// and handlers. Handlers map each kind to one HTTP status.
package apperror

import (
	"errors"
)

var (
	// ErrNotFound is returned when the requested record does not exist. → 404
	ErrNotFound = errors.New("not found")
	// ErrValidation marks missing or malformed input. → 400
	ErrValidation = errors.New("validation error")
	// ErrDuplicate marks a unique-constraint violation (e.g. e-mail). → 400
	ErrDuplicate = errors.New("duplicate")
	// ErrUnauthenticated means no valid session was presented. → 401
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden means the caller is known but lacks role or ownership. → 403
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable means an optional backend (uploads, search) is not configured. → 503
	ErrUnavailable = errors.New("unavailable")
)

// Error carries a client-facing message on top of one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// New returns an error of the given kind with a client-facing message.
func New(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) error { return New(ErrValidation, message) }

func NotFound(message string) error { return New(ErrNotFound, message) }

func Forbidden(message string) error { return New(ErrForbidden, message) }

// Message returns the client-facing message of err, falling back to its text.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
