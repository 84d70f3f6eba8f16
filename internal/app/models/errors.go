package models

import "errors"

// Domain specific errors for authentication and session handling.
var (
	ErrUnauthenticated = errors.New("authentication required or invalid credentials")
	ErrForbidden       = errors.New("action forbidden")
	ErrBadRequest      = errors.New("bad request")
	ErrValidation      = errors.New("validation failed")
	ErrServerRejected  = errors.New("auth service rejected the request")
	ErrTransport       = errors.New("auth service unreachable")
)

// FieldError is a local, field-scoped validation failure. It blocks
// submission before any network call is made.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

func (e *FieldError) Unwrap() error { return ErrValidation }

// ServerRejection carries the auth service's own message, which is surfaced
// to the user verbatim.
type ServerRejection struct {
	Message string
}

func (e *ServerRejection) Error() string { return e.Message }

func (e *ServerRejection) Unwrap() error { return ErrServerRejected }
