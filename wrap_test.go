// wrap_test.go: verification of factory helpers.
package xgxchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	t.Parallel()

	e := New("x", nil)
	assert.Same(t, e, Ensure(e))

	native := errors.New("native")
	got := Ensure(native)
	assert.Equal(t, "native", got.Message())
	assert.Nil(t, got.Parent())

	wrapped := Ensure(Record{Message: "rec", Code: "E1"})
	assert.True(t, wrapped.Code().Equal("E1"))

	var nilChain *Error
	assert.Panics(t, func() { Ensure(nilChain) })
	assert.Panics(t, func() { Ensure("") })
}

func TestCreate(t *testing.T) {
	t.Parallel()

	a := Create("a", WithoutStack())
	b := Create("b", WithParent(a), WithCode("EB"), WithoutStack())

	assert.Same(t, a, b.Parent())
	assert.Equal(t, "[EB]: b\n↳ a", b.Stack())
}

func TestFrom(t *testing.T) {
	t.Parallel()

	assert.Nil(t, From(nil))

	e := New("x", nil)
	assert.Same(t, e, From(e))

	var nilChain *Error
	assert.Nil(t, From(nilChain))

	f := From(errors.New("native"))
	require.NotNil(t, f)
	assert.Equal(t, "native", f.Message())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		err := Wrap(nil, "ctx")
		assert.NoError(t, err)
		assert.True(t, err == nil)
	})

	t.Run("message and parent", func(t *testing.T) {
		base := errors.New("disk full")
		err := Wrap(base, "save", WithCode("ESAVE"), WithoutStack())

		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "save", e.Message())
		assert.ErrorIs(t, err, base)
		assert.Equal(t, "[ESAVE]: save\n↳ disk full", e.Stack())
	})

	t.Run("empty message borrows the parent's", func(t *testing.T) {
		err := Wrap(errors.New("disk full"), "", WithoutStack())
		assert.EqualError(t, err, "disk full")
	})

	t.Run("parent option cannot replace the wrapped error", func(t *testing.T) {
		base := errors.New("base")
		err := Wrap(base, "ctx", WithParent(errors.New("other")), WithoutStack())
		assert.Same(t, base, errors.Unwrap(err))
	})
}
