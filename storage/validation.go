package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Every failure leaving this package wraps one of these:
// ErrUnavailable when the store cannot be created or opened, ErrWriteFailed
// when an insert fails, ErrReadFailed when a query fails.
var (
	ErrUnavailable = errors.New("storage unavailable")
	ErrWriteFailed = errors.New("storage write failed")
	ErrReadFailed  = errors.New("storage read failed")

	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}
