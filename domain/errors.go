package domain

import (
	"errors"
	"fmt"
)

// Error sentinels for session and tree operations
var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNoBackend        = errors.New("session has no active backend")
)

// IOError reports a failed listing, stat, or read against one path.
// It is recoverable and localized to the operation that produced it.
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error on %s: %v", e.Path, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NewIOError wraps cause as an IOError for path
func NewIOError(path string, cause error) *IOError {
	return &IOError{Path: path, Cause: cause}
}

// ClosedError reports a backend call issued after Close. Calls must fail
// fast with this error rather than hang.
type ClosedError struct {
	Op string
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("backend is closed: %s", e.Op)
}

// ConnectionError reports a failure to establish a new backend. When it is
// returned the previous backend's resources are already released, so the
// session is left without a working backend.
type ConnectionError struct {
	Target string
	Cause  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Target, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// IsClosed reports whether err is a ClosedError
func IsClosed(err error) bool {
	var ce *ClosedError
	return errors.As(err, &ce)
}
