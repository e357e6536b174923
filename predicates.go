// predicates.go: classification and query helpers for xgx-chain.
//
// Scope:
//   • IsChain / IsError answer "what is this value" for arbitrary inputs.
//   • ExitCodeOf / CodeOf / LevelOf / HasCode query any error graph, including
//     errors.Join trees, through Walk.
//
// Notes:
//   • IsChain checks the concrete type first, then the KlassID marker, so a
//     chain built by a second copy of this package still qualifies.
//   • Query helpers prefer a chain's resolved values; native errors are probed
//     the same way construction probes them.
//
// Out of scope:
//   • Exiting the process, logging, retry policy.
package xgxchain

// IsChain reports whether v is a chain: an *Error, or any Lineage that
// reports KlassID.
func IsChain(v any) bool {
	if e, ok := v.(*Error); ok {
		return e != nil
	}
	l, ok := v.(Lineage)
	if !ok || isAbsent(l) {
		return false
	}
	return l.Klass() == KlassID
}

// IsError reports whether v is a usable error value: a non-nil error or a
// chain.
func IsError(v any) bool {
	return isErrorLike(v) || IsChain(v)
}

// ExitCodeOf returns the first exit code found in err's unwrap graph.
// A chain reports its resolved exit code; a native error is probed through
// ExitCode(), syscall.Errno and a numeric Code().
func ExitCodeOf(err error) (code int, ok bool) {
	Walk(err, func(node error) bool {
		if l, isChain := asChain(node); isChain {
			code, ok = l.ExitCode()
		} else {
			code, ok = exitCodeOf(errorShape(node))
		}
		return !ok
	})
	return code, ok
}

// CodeOf returns the first non-empty code in err's unwrap graph, or the empty
// Value.
func CodeOf(err error) Value {
	return firstValue(err, func(l Lineage) any { return l.RawCode() }, nativeCode)
}

// LevelOf returns the first non-empty level in err's unwrap graph, or the
// empty Value.
func LevelOf(err error) Value {
	return firstValue(err, func(l Lineage) any { return l.RawLevel() }, nativeLevel)
}

// HasCode reports whether any error in err's unwrap graph carries code.
// Comparison is on coerced values, so HasCode(err, 404) matches "404".
func HasCode(err error, code any) bool {
	want := ValueOf(code)
	if want.IsZero() {
		return false
	}
	found := false
	Walk(err, func(node error) bool {
		var v Value
		if l, ok := asChain(node); ok {
			v = ValueOf(l.RawCode())
		} else if c, ok := nativeCode(node); ok {
			v = ValueOf(c)
		}
		found = !v.IsZero() && v.Equal(want)
		return !found
	})
	return found
}

func firstValue(err error, chain func(Lineage) any, native func(error) (any, bool)) Value {
	var out Value
	Walk(err, func(node error) bool {
		if l, ok := asChain(node); ok {
			out = ValueOf(chain(l))
		} else if raw, ok := native(node); ok {
			out = ValueOf(raw)
		}
		return out.IsZero()
	})
	return out
}
