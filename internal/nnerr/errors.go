// Package nnerr defines the error taxonomy shared by the ArcML packages.
package nnerr

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// UnsupportedError reports a selector value (activation kind, initialization
// kind) that has no implementation.
type UnsupportedError struct {
	What  string // Kind of selector (e.g., "activation", "initialization")
	Value int    // Raw selector value
	Name  string // Selector name if known (e.g., for parse failures)
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %q", ErrUnsupportedOperation, e.What, e.Name)
	}
	return fmt.Sprintf("%s: %s %d", ErrUnsupportedOperation, e.What, e.Value)
}

// Unwrap returns ErrUnsupportedOperation.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupportedOperation
}

// SizeMismatchError reports a vector whose length differs from the one the
// operation was configured for.
type SizeMismatchError struct {
	Op       string // Operation that rejected the input (e.g., "Dense.Forward")
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: input size mismatch: expected %d, got %d",
		ErrInvalidArgument, e.Op, e.Expected, e.Actual)
}

// Unwrap returns ErrInvalidArgument.
func (e *SizeMismatchError) Unwrap() error {
	return ErrInvalidArgument
}

// Unsupported returns an *UnsupportedError for the given selector.
func Unsupported(what string, value int) error {
	return &UnsupportedError{What: what, Value: value}
}
