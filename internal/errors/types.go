package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrAffirmationUnavailable means the affirmation provider is unconfigured
	// or failed. Callers resolve it into the local fallback text.
	ErrAffirmationUnavailable = stderrors.New("affirmation provider unavailable")

	// ErrNotOnboarded is returned by operations that need a stored user.
	ErrNotOnboarded = stderrors.New("not onboarded yet, run 'resurs onboard' first")

	// ErrAlreadyOnboarded is returned when onboarding runs a second time.
	ErrAlreadyOnboarded = stderrors.New("already onboarded")
)

// StorageError reports a failed read or write against the storage provider.
type StorageError struct {
	Op  string // "get", "set", "decode" or "encode"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err unless it is nil.
func NewStorageError(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Key: key, Err: err}
}

// ValidationError reports input rejected before any persistence attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsStorage reports whether err wraps a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return stderrors.As(err, &se)
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
