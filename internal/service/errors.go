package service

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps onto status codes. Ownership
// failures surface as ErrNotFound rather than a distinct forbidden error
// so that a non-owner can never confirm a resource exists.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed field in a request. Its
// message is safe to show to the client.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
