// predicates_test.go: verification of classification and graph queries.
package xgxchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

// foreignChain stands in for a chain built by another copy of this package.
type foreignChain struct {
	klass  string
	msg    string
	parent error
	code   any
	exit   int
	hasExt bool
}

func (f *foreignChain) Error() string         { return f.msg }
func (f *foreignChain) Unwrap() error         { return f.parent }
func (f *foreignChain) Klass() string         { return f.klass }
func (f *foreignChain) Parent() error         { return f.parent }
func (f *foreignChain) Ancestors() []error    { return nil }
func (f *foreignChain) ExitCode() (int, bool) { return f.exit, f.hasExt }
func (f *foreignChain) RawCode() any          { return f.code }
func (f *foreignChain) RawLevel() any         { return nil }
func (f *foreignChain) OrphanStack() string   { return f.msg }
func (f *foreignChain) Stack() string         { return f.msg }

type exitErr struct{ code int }

func (e exitErr) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitErr) ExitCode() int { return e.code }

func TestIsChain(t *testing.T) {
	t.Parallel()

	var nilChain *Error
	var nilForeign *foreignChain

	assert.True(t, IsChain(New("x", nil)))
	assert.True(t, IsChain(&foreignChain{klass: KlassID, msg: "x"}))
	assert.False(t, IsChain(&foreignChain{klass: "example.com/other.Error", msg: "x"}))
	assert.False(t, IsChain(nilChain))
	assert.False(t, IsChain(nilForeign))
	assert.False(t, IsChain(errors.New("x")))
	assert.False(t, IsChain(Record{Message: "x"}))
	assert.False(t, IsChain(nil))
	assert.False(t, IsChain("x"))
}

func TestIsError(t *testing.T) {
	t.Parallel()

	var nilChain *Error

	assert.True(t, IsError(errors.New("x")))
	assert.True(t, IsError(New("x", nil)))
	assert.True(t, IsError(&foreignChain{klass: KlassID, msg: "x"}))
	assert.False(t, IsError(nilChain))
	assert.False(t, IsError(nil))
	assert.False(t, IsError("x"))
	assert.False(t, IsError(Record{Message: "x"}))
}

func TestForeignChain_IsAncestor(t *testing.T) {
	t.Parallel()

	f := &foreignChain{klass: KlassID, msg: "foreign", code: "EF", exit: 9, hasExt: true}
	e := plain(t, "local", f)

	n, ok := e.ExitCode()
	assert.True(t, ok)
	assert.Equal(t, 9, n)
	assert.True(t, e.Code().Equal("EF"))
	assert.Equal(t, "[EF]: local\n↳ [EF]: foreign", e.Stack())

	// a foreign chain as input is rebuilt into this package's type
	r := Ensure(f)
	assert.Equal(t, "foreign", r.Message())
	assert.True(t, r.Code().Equal("EF"))
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	pathErr := &fs.PathError{Op: "open", Path: "/nope", Err: syscall.ENOENT}

	tests := []struct {
		name string
		err  error
		want int
		ok   bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("x")},
		{name: "chain", err: Create("x", WithExitCode(3), WithoutStack()), want: 3, ok: true},
		{name: "exit coder", err: fmt.Errorf("run: %w", exitErr{code: 2}), want: 2, ok: true},
		{name: "errno", err: pathErr, want: int(syscall.ENOENT), ok: true},
		{name: "numeric code", err: &codedErr{msg: "x", code: "12"}, want: 12, ok: true},
		{name: "joined", err: errors.Join(errors.New("a"), Create("b", WithExitCode(5), WithoutStack())), want: 5, ok: true},
		{name: "chain over errno", err: Wrap(pathErr, "load"), want: int(syscall.ENOENT), ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExitCodeOf(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCodeOf_WrappedChainKeepsResolvedCode(t *testing.T) {
	t.Parallel()

	pathErr := &fs.PathError{Op: "open", Path: "/nope", Err: syscall.ENOENT}

	withErrno := Create("load", WithParent(pathErr), WithExitCode(4), WithoutStack())
	got, ok := ExitCodeOf(fmt.Errorf("ctx: %w", withErrno))
	assert.True(t, ok)
	assert.Equal(t, 4, got, "the chain's resolved code wins over its ancestor's errno")

	noErrno := Create("load", WithExitCode(7), WithoutStack())
	got, ok = ExitCodeOf(fmt.Errorf("ctx: %w", noErrno))
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	noCode := Create("load", WithParent(errors.New("plain")), WithoutStack())
	_, ok = ExitCodeOf(fmt.Errorf("ctx: %w", noCode))
	assert.False(t, ok)
}

func TestExitCodeOf_OSError(t *testing.T) {
	t.Parallel()

	_, err := os.Open("/definitely/not/here")
	if !assert.Error(t, err) {
		return
	}
	got, ok := ExitCodeOf(Wrap(err, "read config"))
	assert.True(t, ok)
	assert.Equal(t, int(syscall.ENOENT), got)
}

func TestCodeOf_LevelOf(t *testing.T) {
	t.Parallel()

	a := plain(t, Record{Message: "a", Code: "EA", Level: "fatal"}, nil)
	joined := errors.Join(errors.New("plain"), fmt.Errorf("ctx: %w", a))

	assert.True(t, CodeOf(joined).Equal("EA"))
	assert.True(t, LevelOf(joined).Equal("fatal"))
	assert.True(t, CodeOf(&codedErr{msg: "x", code: 7}).Equal(7))
	assert.True(t, CodeOf(errors.New("x")).IsZero())
	assert.True(t, CodeOf(nil).IsZero())
	assert.True(t, LevelOf(errors.New("x")).IsZero())
}

func TestHasCode(t *testing.T) {
	t.Parallel()

	inner := &codedErr{msg: "inner", code: "404"}
	outer := plain(t, Record{Message: "outer", Code: "EOUTER"}, inner)

	assert.True(t, HasCode(outer, "EOUTER"))
	assert.True(t, HasCode(outer, 404))
	assert.True(t, HasCode(outer, "404"))
	assert.False(t, HasCode(outer, "EMISSING"))
	assert.False(t, HasCode(outer, ""))
	assert.False(t, HasCode(nil, "EOUTER"))
}
