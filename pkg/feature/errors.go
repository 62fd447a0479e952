package feature

import (
	"errors"
	"fmt"
)

// Feature errors.
var (
	ErrAccessDenied   = errors.New("access denied")
	ErrInvalidValue   = errors.New("invalid value")
	ErrDeviceRejected = errors.New("device rejected request")
	ErrUnknownFeature = errors.New("unknown feature")
	ErrKindMismatch   = errors.New("feature kind mismatch")
)

// Operation names used in Error.
const (
	OpGet     = "get"
	OpSet     = "set"
	OpExecute = "execute"
	OpAccess  = "access"
	OpRange   = "range"
	OpLookup  = "lookup"
)

// Error describes a failed operation on a single feature.
type Error struct {
	// Op is the operation that failed (OpGet, OpSet, ...).
	Op string

	// Feature is the feature name.
	Feature string

	// Err is the underlying error; it wraps one of the package sentinels
	// whenever the failure was classified.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("feature %s: %s: %v", e.Feature, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op, name string, err error) *Error {
	return &Error{Op: op, Feature: name, Err: err}
}

func accessDenied(op, name string, mode AccessMode) *Error {
	var what string
	switch {
	case op == OpGet && mode.CanWrite():
		what = "feature is write-only"
	case op != OpGet && mode.CanRead():
		what = "feature is read-only"
	default:
		what = "feature is not accessible"
	}
	return newError(op, name, fmt.Errorf("%w: %s", ErrAccessDenied, what))
}

func invalidValue(op, name string, format string, args ...any) *Error {
	return newError(op, name, fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...))
}

func deviceRejected(op, name string, cause error) *Error {
	return newError(op, name, fmt.Errorf("%w: %w", ErrDeviceRejected, cause))
}
