package listings

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced by the lifecycle service. Controllers map these to
// HTTP codes; infrastructure detail never crosses that boundary.
var (
	// ErrNotFound covers both "never existed" and "expired and already
	// evicted" - callers must treat it as a normal outcome near the
	// expiry deadline.
	ErrNotFound = errors.New("listing not found")

	// ErrNotOwner is returned when a valid caller tries to delete a
	// listing they do not own.
	ErrNotOwner = errors.New("listing belongs to another user")
)

// ValidationError reports malformed or missing input. The message is meant to
// be shown to the caller as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps a persistence failure. The wrapped error is for logs only;
// callers see a generic failure and may retry with backoff.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
