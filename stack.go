// stack.go: stack capture and stack text composition for xgx-chain.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - Capture once, at construction, and render into text immediately so the
//     chain's stacks are plain strings (snapshot semantics).
//   - Compose full stacks from per-error segments joined by StackSeparator.
package xgxchain

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Frames is a slice of Frame from most recent call outward.
type Frames []Frame

const (
	// defaultMaxDepth bounds capture on the error path.
	defaultMaxDepth = 64
)

// captureStackDepth captures up to depth frames, skipping 'skip' frames
// beyond its caller.
//
// Skip model for a typical call chain:
//
//	New → build → captureStackDepth → captureStack → runtime.Callers
//
// With skip=0 the first recorded frame is the caller of captureStackDepth.
func captureStackDepth(skip, depth int) Frames {
	return captureStack(skip, depth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
// It must only be called through captureStackDepth; the skip accounting
// assumes one extra helper frame.
func captureStack(skip, maxDepth int) Frames {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +1 runtime.Callers, +1 captureStack, +1 captureStackDepth.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Frames, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// String renders frames one per line, indented, most recent first.
func (fs Frames) String() string {
	var sb strings.Builder
	for i, fr := range fs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&sb, "    at %s (%s:%d)", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}

// generatedStack is the stack text a chain generates for itself: the message
// followed by the captured frames.
func generatedStack(msg string, fs Frames) string {
	if len(fs) == 0 {
		return ""
	}
	if msg == "" {
		return fs.String()
	}
	return msg + "\n" + fs.String()
}

// tagCode prefixes text with "[code]: " when code is a non-empty text that
// the text does not already contain. Numeric codes never tag.
func tagCode(code any, text string) string {
	var c string
	switch t := code.(type) {
	case string:
		c = t
	case Value:
		c, _ = t.Text()
	}
	if c == "" || strings.Contains(text, c) {
		return text
	}
	return "[" + c + "]: " + text
}

// joinSegments drops empty segments and joins the rest with StackSeparator.
func joinSegments(segments []string) string {
	kept := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, StackSeparator)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
