package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrIllegalTransition = errors.New("illegal status transition")
)

func errorIllegal(from, to OrderStatus) error {
	return fmt.Errorf("%w: cannot move from %s to %s", ErrIllegalTransition, from, to)
}

// FieldError names one violated constraint on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every violated field constraint at once, so
// the submission form can highlight all of them in a single round trip.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

// StorageError wraps a persistence failure so callers can tell
// "your request was invalid" apart from "try again". The driver error
// stays available for logging but is never shown to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
