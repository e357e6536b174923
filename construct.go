// construct.go: the chain type and its construction algorithm.
//
// Scope:
//   - Error, the only concrete type, implementing Lineage.
//   - build: normalize input, resolve parent, flatten ancestors, scan
//     metadata, derive the orphan stack, compose the full stack.
//
// Notes:
//   - Every resolved value is stored by value; mutating an ancestor later does
//     not reach descendants that were already built.
//   - The metadata scan is two-level: the outer loop walks candidates
//     [input, self, ...ancestors], the inner loop walks field names. Changing
//     the nesting changes which ancestor wins.
package xgxchain

// Error is an error that carries its ancestry.
//
// Build one with New, Construct or Create. The zero Error is not useful.
type Error struct {
	message     string
	parent      error
	ancestors   []error
	exitCode    int
	hasExitCode bool
	code        Value
	level       Value
	orphanStack string
	stack       string
	frames      Frames
}

var _ Lineage = (*Error)(nil)

func (e *Error) Error() string { return e.message }
func (e *Error) Unwrap() error { return e.parent }

func (e *Error) Klass() string       { return KlassID }
func (e *Error) Message() string     { return e.message }
func (e *Error) Parent() error       { return e.parent }
func (e *Error) Code() Value         { return e.code }
func (e *Error) Level() Value        { return e.level }
func (e *Error) RawCode() any        { return e.code.Any() }
func (e *Error) RawLevel() any       { return e.level.Any() }
func (e *Error) OrphanStack() string { return e.orphanStack }
func (e *Error) Stack() string       { return e.stack }

// Ancestors returns a copy of the lineage, nearest first.
func (e *Error) Ancestors() []error {
	if len(e.ancestors) == 0 {
		return nil
	}
	out := make([]error, len(e.ancestors))
	copy(out, e.ancestors)
	return out
}

// ExitCode returns the exit code resolved at construction (or set since).
func (e *Error) ExitCode() (int, bool) { return e.exitCode, e.hasExitCode }

// Frames returns the call sites captured at construction; nil when capture
// was disabled with WithoutStack.
func (e *Error) Frames() Frames { return e.frames }

// ------ post-construction mutators (mutate receiver intentionally)

// SetExitCode overrides the exit code and returns the same receiver.
func (e *Error) SetExitCode(code int) *Error {
	e.exitCode, e.hasExitCode = code, true
	return e
}

// ClearExitCode removes the exit code and returns the same receiver.
func (e *Error) ClearExitCode() *Error {
	e.exitCode, e.hasExitCode = 0, false
	return e
}

// SetCode overrides the code (coerced like any candidate) and returns the
// same receiver. Stacks already built are not re-tagged.
func (e *Error) SetCode(code any) *Error {
	e.code = ValueOf(code)
	return e
}

// SetLevel overrides the level and returns the same receiver.
func (e *Error) SetLevel(level any) *Error {
	e.level = ValueOf(level)
	return e
}

// ------ constructors

// New builds a chain from input and an optional parent (nil for none).
// It panics with an *InvalidInputError when input is absent, which is a
// programming error; use Construct to get the error instead.
func New(input, parent any) *Error {
	e, err := build(input, newConfig(parent, 1, nil))
	if err != nil {
		panic(err)
	}
	return e
}

// Construct is New returning the invalid-input failure instead of panicking.
func Construct(input, parent any, opts ...Option) (*Error, error) {
	return build(input, newConfig(parent, 1, opts))
}

// build is the construction algorithm. c.skip counts frames above build's
// caller to leave out of the captured stack.
func build(input any, c config) (*Error, error) {
	if isAbsent(input) {
		return nil, &InvalidInputError{Input: input}
	}

	in := normalize(input)
	e := &Error{message: in.message}

	// parent: explicit wins, then input parent, then input cause
	candidate := c.parent
	if isAbsent(candidate) {
		candidate = in.parent
	}
	if isAbsent(candidate) {
		candidate = in.cause
	}
	if !isAbsent(candidate) {
		if isErrorLike(candidate) {
			e.parent = candidate.(error)
		} else {
			// candidate is known present, so the nested build cannot fail;
			// one more skip keeps its frames starting at our caller
			p, _ := build(candidate, config{capture: c.capture, skip: c.skip + 1, depth: c.depth})
			e.parent = p
		}
	}

	// ancestors: one linear list, the parent's own lineage appended after it
	if e.parent != nil {
		e.ancestors = append(e.ancestors, e.parent)
		if l, ok := asChain(e.parent); ok {
			e.ancestors = append(e.ancestors, l.Ancestors()...)
		}
	}

	// exit code, code, level
	candidates := make([]shape, 0, len(e.ancestors)+2)
	candidates = append(candidates, in, c.self())
	for _, a := range e.ancestors {
		candidates = append(candidates, normalize(a))
	}
	resolveMetadata(e, candidates)

	if c.capture {
		e.frames = captureStackDepth(c.skip+1, c.depth)
	}

	// orphan stack: input orphan stack, input stack, own stack, message
	e.orphanStack = tagCode(e.code, firstNonEmpty(
		in.orphanStack,
		in.stack,
		generatedStack(e.message, e.frames),
		e.message,
	))

	// full stack: self, then each ancestor tagged with its own code
	segments := make([]string, 0, len(e.ancestors)+1)
	segments = append(segments, e.orphanStack)
	for _, a := range e.ancestors {
		segments = append(segments, ancestorSegment(a))
	}
	e.stack = joinSegments(segments)

	return e, nil
}

// resolveMetadata walks candidates once; for each target the first candidate
// yielding a valid value wins.
func resolveMetadata(e *Error, candidates []shape) {
	for _, s := range candidates {
		if !e.hasExitCode {
			e.exitCode, e.hasExitCode = exitCodeOf(s)
		}
		if e.code.IsZero() && s.code.present {
			e.code = ValueOf(s.code.val)
		}
		if e.level.IsZero() && s.level.present {
			e.level = ValueOf(s.level.val)
		}
	}
}

// exitCodeOf applies exitCode → errno → code to one candidate. The first
// field the candidate declares decides, even if its value is not numeric.
func exitCodeOf(s shape) (int, bool) {
	for _, f := range [...]slot{s.exitCode, s.errno, s.code} {
		if f.present {
			return parseExitCode(f.val)
		}
	}
	return 0, false
}

// ancestorSegment is an ancestor's best-available stack text, tagged with
// its own code.
func ancestorSegment(a error) string {
	if l, ok := asChain(a); ok {
		return tagCode(l.RawCode(), firstNonEmpty(l.OrphanStack(), l.Stack(), l.Error()))
	}
	code, _ := nativeCode(a)
	return tagCode(code, firstNonEmpty(nativeStack(a), a.Error()))
}

// asChain returns v as a Lineage when it is a chain from any package copy.
func asChain(v any) (Lineage, bool) {
	if !IsChain(v) {
		return nil, false
	}
	l, ok := v.(Lineage)
	return l, ok
}
