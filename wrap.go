// wrap.go: factory helpers that operate on arbitrary values.
//
// Purpose
//   - Turn ANY error (or record, or string) into a chain without ceremony.
//   - Keep identity when the value already is a chain: Ensure never rebuilds
//     an *Error.
//   - Stay policy-free: no logging/exit/retry opinions here.
package xgxchain

// Create is the factory form of New: the parent, if any, comes from
// WithParent. It panics like New on an absent input.
func Create(input any, opts ...Option) *Error {
	e, err := build(input, newConfig(nil, 1, opts))
	if err != nil {
		panic(err)
	}
	return e
}

// Ensure returns v itself when it already is an *Error, and otherwise a new
// chain built from v with no explicit parent. A chain built by another copy
// of this package is rebuilt into this package's type.
// It panics like New on an absent input.
func Ensure(v any) *Error {
	if e, ok := v.(*Error); ok && e != nil {
		return e
	}
	e, err := build(v, newConfig(nil, 1, nil))
	if err != nil {
		panic(err)
	}
	return e
}

// From converts an error into a chain without adding policy.
//   - nil → nil (a nil *Error; do not return it as an error)
//   - *Error → returned as-is
//   - other error → wrapped, its Unwrap cause becoming the parent
func From(err error) *Error {
	if isAbsent(err) {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	e, _ := build(err, newConfig(nil, 1, nil))
	return e
}

// Wrap builds a chain with message msg whose parent is err.
//   - nil err → untyped nil, so `return xgxchain.Wrap(err, "...")` is safe on
//     success paths (the result is an error, not an *Error, for that reason)
//   - empty msg → the chain takes err's message
func Wrap(err error, msg string, opts ...Option) error {
	if isAbsent(err) {
		return nil
	}
	if msg == "" {
		msg = err.Error()
	}
	if msg == "" {
		msg = "error"
	}
	c := newConfig(nil, 1, opts)
	c.parent = err // WithParent cannot replace the wrapped error
	e, _ := build(msg, c)
	return e
}
