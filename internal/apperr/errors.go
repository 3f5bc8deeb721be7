package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cases that carry no extra payload. Forbidden is
// deliberately message-free so callers cannot tell role mismatch from a
// missing company link.
var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)

// ValidationError reports a missing or malformed field on a write payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports slug-retry exhaustion and category/company mismatches
// distinctly from generic failures so the UI can offer a rename or re-pick.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps an underlying data-store failure. Not retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store failure in %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }
func IsNotFound(err error) bool  { return errors.Is(err, ErrNotFound) }
