// Package geomerr defines the error kinds shared by the geometry and solver packages.
package geomerr

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	// ErrInvalidInput: dimension mismatch or an out-of-range parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate: a division by a (numerically) zero quantity.
	ErrDegenerate = errors.New("degenerate input")

	// ErrUnsolvable: the coefficient system has no unique solution.
	ErrUnsolvable = errors.New("unsolvable system")
)

// Error is a failure of one operation.
type Error struct {
	Op   string // operation that failed, e.g. "camera.project"
	Kind error  // one of the Err* kinds
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// Invalid returns an ErrInvalidInput failure for op.
func Invalid(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Degenerate returns an ErrDegenerate failure for op.
func Degenerate(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrDegenerate, Msg: fmt.Sprintf(format, args...)}
}

// Unsolvable returns an ErrUnsolvable failure for op.
func Unsolvable(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrUnsolvable, Msg: fmt.Sprintf(format, args...)}
}

// KindName returns a short label for err's kind, or "" if err carries none.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrDegenerate):
		return "DegenerateInput"
	case errors.Is(err, ErrUnsolvable):
		return "Unsolvable"
	}
	return ""
}
