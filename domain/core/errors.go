package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Fatal pipeline errors
	ErrNoDataset      = errors.New("no dataset supplied")
	ErrEmptyDataset   = errors.New("dataset has no columns")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrColumnNotFound = errors.New("column not found")

	// Analysis errors
	ErrInsufficientData   = errors.New("insufficient data for analysis")
	ErrDegenerateInput    = errors.New("degenerate input")
	ErrUnknownCorrelation = errors.New("unknown correlation method")
	ErrUnsupportedColumn  = errors.New("column type is unsupported")
)

// Error constructors with context
func NewColumnError(column string, err error) error {
	return fmt.Errorf("column %q: %w", column, err)
}

func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, reason)
}

func NewCorrelationError(method string, err error) error {
	return fmt.Errorf("correlation %q: %w", method, err)
}

// IsFatal reports whether an error must abort the profiling run
func IsFatal(err error) bool {
	return errors.Is(err, ErrNoDataset) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrInvalidConfig)
}
