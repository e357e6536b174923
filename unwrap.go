// unwrap.go: stdlib-interop traversal over error graphs.
//
// Scope:
//   - Pre-order DFS over single- and multi-wrapped errors (errors.Join,
//     Unwrap() []error) used by the query helpers in predicates.go.
//   - Root: the deepest error along the first path.
//
// Design notes (Go ≥1.20):
//   - errors.Unwrap only calls Unwrap() error, so traversal handles BOTH forms.
//   - map[error] cannot be a blanket "seen" set: interface values whose dynamic
//     type is not comparable panic as map keys. The guard is dual: pointer
//     identity (seenPtr) for pointer types, map[error] (seenErr) for other
//     comparable types. Anything else is treated as acyclic, bounded by depth.
package xgxchain

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxWalkDepth caps traversal against runaway graphs.
const maxWalkDepth = 1 << 12

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns true if 'err' was newly marked; false if already seen.
// If err is neither comparable nor a pointer, it returns true (treated as acyclic).
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	if reflect.TypeOf(err).Comparable() {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	return true
}

// Walk traverses an error graph depth-first and calls visit for each DISTINCT
// node in PRE-ORDER (visit BEFORE expanding children). If visit returns false,
// traversal stops early. It is safe on cycles and nil is a no-op.
//
// For a chain, pre-order along Unwrap is exactly the chain followed by its
// ancestors, nearest first.
func Walk(err error, visit func(error) bool) {
	if isAbsent(err) || visit == nil {
		return
	}

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// multi first; push in reverse for left-to-right DFS
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				k := kids[i]
				if isAbsent(k) {
					continue
				}
				if markSeen(k, seenErr, seenPtr) {
					stack = append(stack, k)
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); !isAbsent(u) && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Root returns the deepest error along the first path of err's graph: for a
// chain, its farthest ancestor (or the chain itself when it has none).
// If err is nil, Root returns nil.
func Root(err error) error {
	if isAbsent(err) {
		return nil
	}
	cur := err
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)
	_ = markSeen(cur, seenErr, seenPtr)
	for depth := 0; depth < maxWalkDepth; depth++ {
		var next error
		switch t := cur.(type) {
		case multiUnwrapper:
			for _, k := range t.Unwrap() {
				if !isAbsent(k) {
					next = k
					break
				}
			}
		case singleUnwrapper:
			next = t.Unwrap()
		}
		if isAbsent(next) || !markSeen(next, seenErr, seenPtr) {
			return cur
		}
		cur = next
	}
	return cur
}
