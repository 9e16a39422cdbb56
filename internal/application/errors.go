package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrAlreadyStarred = errors.New("already starred")
	ErrNotFound       = errors.New("not found")
	ErrPersistence    = errors.New("persistence failure")
	ErrDeclined       = errors.New("declined by user")
	ErrInvalidTarget  = errors.New("invalid target")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TargetError reports a star/unstar target that is not a filesystem location
type TargetError struct {
	Target string
	Reason string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("cannot star %s: %s", e.Target, e.Reason)
}

func (e *TargetError) Is(target error) bool {
	return target == ErrInvalidTarget
}

// PersistenceError represents a failed write to the state store. The
// mutation that caused it was not committed.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
