// Package apperrors holds the error types the registration workflow returns
// and the HTTP layer maps to status codes.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrCustomerNotFound is returned by lookups that match nothing.
var ErrCustomerNotFound = errors.New("customer not found")

// ValidationError wraps the first failing validation rule.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidation(err error) error {
	return &ValidationError{Err: err}
}

// PersistenceError is a failed document store call. Its message is shown to
// the caller as the detail of a server error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// NotificationError is a failed confirmation email. It is only ever logged.
type NotificationError struct {
	To  string
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("send confirmation to %s: %v", e.To, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
