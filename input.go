// input.go: the accepted input shapes and their normalization.
//
// Construction accepts, as input or parent:
//   - a chain (*Error, or any Lineage carrying KlassID)
//   - a native error
//   - a Record, *Record, or map[string]any descriptor
//   - a string (the message, no metadata)
//   - anything else, through fmt.Sprint
//
// normalize pattern-matches these once and produces a shape, so the metadata
// scan in construct.go never inspects input types itself.
package xgxchain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Record is a plain error descriptor. A nil field is absent.
type Record struct {
	Message     string
	Code        any
	Level       any
	ExitCode    any
	Errno       any
	Parent      any
	Cause       any
	OrphanStack string
	Stack       string
}

func (r Record) isZero() bool {
	return r.Message == "" && r.Code == nil && r.Level == nil &&
		r.ExitCode == nil && r.Errno == nil && r.Parent == nil &&
		r.Cause == nil && r.OrphanStack == "" && r.Stack == ""
}

// String is the message, or a compact rendering of the metadata when the
// record has no message.
func (r Record) String() string {
	if r.Message != "" {
		return r.Message
	}
	var parts []string
	for _, kv := range []struct {
		k string
		v any
	}{{"code", r.Code}, {"level", r.Level}, {"exitCode", r.ExitCode}, {"errno", r.Errno}} {
		if kv.v != nil {
			parts = append(parts, fmt.Sprintf("%s=%v", kv.k, kv.v))
		}
	}
	return "record{" + strings.Join(parts, " ") + "}"
}

// slot is one optional field read from an input.
type slot struct {
	val     any
	present bool
}

func has(v any) slot { return slot{val: v, present: v != nil} }

// shape is the canonical view of any input.
type shape struct {
	message     string
	exitCode    slot
	errno       slot
	code        slot
	level       slot
	parent      any
	cause       any
	orphanStack string
	stack       string
}

// normalize maps an input of any accepted shape onto a shape.
func normalize(input any) shape {
	switch t := input.(type) {
	case *Error:
		return lineageShape(t)
	case Lineage:
		if t.Klass() == KlassID {
			return lineageShape(t)
		}
		return errorShape(t)
	case error:
		return errorShape(t)
	case Record:
		return recordShape(t)
	case *Record:
		return recordShape(*t)
	case map[string]any:
		return mapShape(t)
	case string:
		return shape{message: t}
	case fmt.Stringer:
		return shape{message: t.String()}
	default:
		return shape{message: fmt.Sprint(input)}
	}
}

func lineageShape(l Lineage) shape {
	s := shape{
		message:     l.Error(),
		code:        has(l.RawCode()),
		level:       has(l.RawLevel()),
		parent:      l.Parent(),
		orphanStack: l.OrphanStack(),
		stack:       l.Stack(),
	}
	// A chain always declares its exit code, even when it resolved to none.
	s.exitCode.present = true
	if n, ok := l.ExitCode(); ok {
		s.exitCode.val = n
	}
	return s
}

func errorShape(err error) shape {
	s := shape{
		message: err.Error(),
		cause:   errors.Unwrap(err),
		stack:   nativeStack(err),
	}
	if n, ok := nativeExitCode(err); ok {
		s.exitCode = slot{val: n, present: true}
	}
	if n, ok := nativeErrno(err); ok {
		s.errno = slot{val: n, present: true}
	}
	if c, ok := nativeCode(err); ok {
		s.code = slot{val: c, present: true}
	}
	if l, ok := nativeLevel(err); ok {
		s.level = slot{val: l, present: true}
	}
	return s
}

func recordShape(r Record) shape {
	return shape{
		message:     r.String(),
		exitCode:    has(r.ExitCode),
		errno:       has(r.Errno),
		code:        has(r.Code),
		level:       has(r.Level),
		parent:      r.Parent,
		cause:       r.Cause,
		orphanStack: r.OrphanStack,
		stack:       r.Stack,
	}
}

func mapShape(m map[string]any) shape {
	s := shape{
		exitCode:    lookup(m, "exitCode"),
		errno:       lookup(m, "errno"),
		code:        lookup(m, "code"),
		level:       lookup(m, "level"),
		parent:      m["parent"],
		cause:       m["cause"],
		orphanStack: textOf(m["orphanStack"]),
		stack:       textOf(m["stack"]),
	}
	s.message = textOf(m["message"])
	if s.message == "" {
		s.message = fmt.Sprint(m)
	}
	return s
}

func lookup(m map[string]any, key string) slot {
	v, ok := m[key]
	return slot{val: v, present: ok}
}

func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// isAbsent reports whether v cannot describe an error: nil, a nil pointer,
// map, slice or func, "", false, a numeric zero or NaN, or an empty Record.
func isAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case Record:
		return t.isZero()
	case *Record:
		return t == nil || t.isZero()
	}
	rv := reflect.ValueOf(v)
	if _, ok := v.(error); ok {
		// an error is absent only as a nil pointer; Errno(0) still describes something
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return rv.IsNil()
		}
		return false
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || f != f
	}
	return false
}

// isErrorLike reports whether v is a usable error value.
func isErrorLike(v any) bool {
	if isAbsent(v) {
		return false
	}
	_, ok := v.(error)
	return ok
}
