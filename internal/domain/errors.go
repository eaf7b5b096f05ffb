package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an id or name lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrPersistence wraps storage-layer failures. Internal details are
	// logged, never surfaced to the caller.
	ErrPersistence = errors.New("persistence failure")
)

// UnknownSizeError reports a size that could not be resolved during order
// composition. The whole order fails; partial orders are never persisted.
type UnknownSizeError struct {
	Name string
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("unknown size %q", e.Name)
}

// ValidationError reports a missing or malformed field on create/update.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ReferentialIntegrityError reports an attempt to delete a catalog row that
// existing orders still reference.
type ReferentialIntegrityError struct {
	Entity string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s is still referenced by existing orders", e.Entity)
}
