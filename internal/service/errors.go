package service

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error kinds. Every error returned by a service wraps exactly one of these,
// so callers classify with errors.Is.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("not permitted")
	ErrStorage          = errors.New("storage failure")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrConflict         = errors.New("conflict")
)

// Kind returns the snake_case name of err's kind, "internal" when none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrStorage):
		return "storage_failure"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// storageError logs the driver-level cause and hides it behind ErrStorage.
// The cause stays in the chain for errors.Is.
func storageError(op string, err error) error {
	slog.Error("storage operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
