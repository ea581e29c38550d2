// Package errors provides domain-specific error types for filetransfer
// nodes.
//
// None of these errors ever cross the host boundary: the node logs them
// and returns normally.  They exist so callers and tests can tell a
// usage problem from a start failure without matching log text.
package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrRoleActive is returned when a node is configured while a
	// client or server role is still installed.
	ErrRoleActive = errors.New("a role is already active on this node")

	// ErrInvalidTransition is returned for a dispatcher state change
	// that is not in the transition table.
	ErrInvalidTransition = errors.New("invalid dispatcher state transition")

	// ErrNoMachine is returned when the host supplied no machine
	// implementation for the requested role.
	ErrNoMachine = errors.New("no machine implementation available")
)

// ── Structured error types ───────────────────────────────────────────

// UsageError represents a malformed invocation: missing arguments or an
// unknown mode or sub-mode.
type UsageError struct {
	Shape  string // invocation shape being parsed, e.g. "client double"
	Reason string
}

func (e *UsageError) Error() string {
	if e.Shape == "" {
		return "usage: " + e.Reason
	}
	return fmt.Sprintf("usage: %s: %s", e.Shape, e.Reason)
}

// StartError represents a machine that failed to start.
type StartError struct {
	Role string // "client" or "server"
	Code string // machine result code, if it reports one
	Err  error
}

func (e *StartError) Error() string {
	s := e.Role + " start failed"
	if e.Code != "" {
		s += " (" + e.Code + ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *StartError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// Usage creates a UsageError.
func Usage(shape, format string, args ...interface{}) *UsageError {
	return &UsageError{Shape: shape, Reason: fmt.Sprintf(format, args...)}
}

// ── Classification helpers ───────────────────────────────────────────

// IsUsage reports whether err is, or wraps, a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// IsStart reports whether err is, or wraps, a StartError.
func IsStart(err error) bool {
	var se *StartError
	return errors.As(err, &se)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// Construction and wrapping come from github.com/pkg/errors so wrapped
// errors carry a stack; inspection is the standard library's.

// Errorf is [pkgerrors.Errorf].
func Errorf(format string, args ...interface{}) error { return pkgerrors.Errorf(format, args...) }

// Wrap is [pkgerrors.Wrap].
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

// Wrapf is [pkgerrors.Wrapf].
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
