package scipress_errors

import (
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("already exists")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ErrMissingEventData marks a domain event constructed without a
// required payload field. Optional channel content resolving to nil is
// not an error; a required field absent at construction is.
var ErrMissingEventData = errors.New("missing event data")

// MissingEventData wraps ErrMissingEventData with the field name.
func MissingEventData(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingEventData, field)
}

// NowPtr returns a pointer to current time
func NowPtr() *time.Time {
	now := time.Now()
	return &now
}
