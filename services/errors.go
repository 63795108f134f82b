package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStateTransition reports that the submission already received
	// a decision and cannot be reviewed again.
	ErrInvalidStateTransition = errors.New("submission is not awaiting review")
)

// ValidationError reports a missing or malformed caller-supplied field.
// It is never retried automatically.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a store failure. Reads are safe to retry; mutating
// operations should re-read current state before retrying.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
