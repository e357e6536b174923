// Package xgxchain defines an error value that carries its ancestry: the
// linear chain of causes that led to it, a composed stack spanning the whole
// chain, and metadata (exit code, code, level) inherited from that chain.
//
// Design tenets:
//   - Interop-first: Unwrap exposes the parent, so errors.Is/As see the lineage.
//   - Snapshot resolution: every inherited value is computed once, at
//     construction, and stored by value.
//   - Permissive inputs: anything error-like (or record-like) can be wrapped;
//     only an absent input is refused.
//
// See: errors.Is / errors.As / errors.Unwrap contracts in the Go standard library.
package xgxchain

import (
	"errors"
	"fmt"
)

// StackSeparator joins the segments of a full stack. Split on it to recover
// one segment per error in the lineage.
const StackSeparator = "\n↳ "

// KlassID is the identity marker every chain value reports from Klass().
//
// Two copies of this package linked into one binary (vendoring, major version
// skew) define distinct *Error types; IsChain falls back to this marker so
// chains built by either copy are still recognised.
const KlassID = "github.com/xgx-io/xgx-chain.Error"

// Lineage is the surface shared by chain values across package copies.
//
// Only builtin types appear in the method set so that a value built by another
// copy of this package still satisfies it.
type Lineage interface {
	error

	// Klass returns KlassID.
	Klass() string

	// Parent returns the immediate cause, or nil.
	Parent() error

	// Ancestors returns the flattened lineage, nearest first.
	Ancestors() []error

	// ExitCode returns the resolved exit code, if any.
	ExitCode() (int, bool)

	// RawCode and RawLevel return nil, an int, a float64 or a string.
	RawCode() any
	RawLevel() any

	// OrphanStack is the trace of this error alone.
	OrphanStack() string

	// Stack is the trace of this error followed by every ancestor's trace,
	// joined by StackSeparator.
	Stack() string
}

// ErrInvalidInput is matched (via errors.Is) by every *InvalidInputError.
var ErrInvalidInput = errors.New("xgxchain: invalid input")

// InvalidInputError reports an attempt to build a chain from an absent input:
// nil, a nil pointer, "", false or a numeric zero.
type InvalidInputError struct {
	Input any
}

func (e *InvalidInputError) Error() string {
	if e.Input == nil {
		return "xgxchain: attempted to create an error chain without an input"
	}
	return fmt.Sprintf("xgxchain: attempted to create an error chain from an empty input (%T)", e.Input)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
