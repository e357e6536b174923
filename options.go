package xgxchain

// Option configures a chain during Construct or Create.
type Option func(*config)

type config struct {
	parent      any
	code        any
	level       any
	exitCode    int
	hasExitCode bool
	capture     bool
	skip        int
	depth       int
}

func newConfig(parent any, skip int, opts []Option) config {
	c := config{parent: parent, capture: true, skip: skip, depth: defaultMaxDepth}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}

// self is the candidate the chain itself contributes to the metadata scan,
// after the input and before the ancestors. A chain always declares its exit
// code, so a chain without WithExitCode never inherits one from its own code.
func (c config) self() shape {
	s := shape{
		code:  has(c.code),
		level: has(c.level),
	}
	s.exitCode.present = true
	if c.hasExitCode {
		s.exitCode.val = c.exitCode
	}
	return s
}

// WithParent sets the parent; it takes precedence over the input's own
// parent or cause.
func WithParent(parent any) Option { return func(c *config) { c.parent = parent } }

// WithCode presets the chain's code. A code on the input still wins.
func WithCode(code any) Option { return func(c *config) { c.code = code } }

// WithLevel presets the chain's level. A level on the input still wins.
func WithLevel(level any) Option { return func(c *config) { c.level = level } }

// WithExitCode presets the chain's exit code. An exit code on the input
// still wins.
func WithExitCode(code int) Option {
	return func(c *config) { c.exitCode, c.hasExitCode = code, true }
}

// WithoutStack disables frame capture; the orphan stack then falls back to
// the message when the input carries no stack.
func WithoutStack() Option { return func(c *config) { c.capture = false } }

// WithStackSkip skips extra frames, for helpers that construct on behalf of
// their caller.
func WithStackSkip(skip int) Option {
	return func(c *config) {
		if skip > 0 {
			c.skip += skip
		}
	}
}

// WithStackDepth bounds the number of captured frames.
func WithStackDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}
