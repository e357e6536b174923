// codes_test.go: verification of Value coercion and numeric parsing.
package xgxchain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type numberStringer string

func (s numberStringer) String() string { return string(s) }

func TestValueOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		zero    bool
		number  bool
		wantStr string
	}{
		{name: "nil", in: nil, zero: true},
		{name: "empty", in: "", zero: true},
		{name: "empty value", in: Value{}, zero: true},
		{name: "zero text", in: "0", number: true, wantStr: "0"},
		{name: "negative text", in: "-1", number: true, wantStr: "-1"},
		{name: "padded text", in: "  7 ", number: true, wantStr: "7"},
		{name: "exponent", in: "1e3", number: true, wantStr: "1000"},
		{name: "hex", in: "0x10", number: true, wantStr: "16"},
		{name: "leading zero stays decimal", in: "017", number: true, wantStr: "17"},
		{name: "fraction", in: 1.5, number: true, wantStr: "1.5"},
		{name: "int", in: 42, number: true, wantStr: "42"},
		{name: "uint8", in: uint8(3), number: true, wantStr: "3"},
		{name: "bool", in: true, number: true, wantStr: "1"},
		{name: "stringer", in: numberStringer("12"), number: true, wantStr: "12"},
		{name: "text", in: "CCode", wantStr: "CCode"},
		{name: "blank", in: "   ", wantStr: "   "},
		{name: "nan", in: math.NaN(), wantStr: "NaN"},
		{name: "error is never numeric", in: errors.New("3"), wantStr: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.in)
			assert.Equal(t, tt.zero, v.IsZero())
			assert.Equal(t, tt.number, v.IsNumber())
			assert.Equal(t, !tt.zero && !tt.number, v.IsText())
			assert.Equal(t, tt.wantStr, v.String())
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	n := NumberValue(3)
	i, ok := n.Int()
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = n.Text()
	assert.False(t, ok)

	f := NumberValue(2.5)
	_, ok = f.Int()
	assert.False(t, ok)
	assert.Equal(t, 2.5, f.Any())

	s := TextValue("E")
	txt, ok := s.Text()
	assert.True(t, ok)
	assert.Equal(t, "E", txt)
	_, ok = s.Number()
	assert.False(t, ok)
	assert.Equal(t, "E", s.Any())

	assert.True(t, TextValue("").IsZero())
	assert.Nil(t, Value{}.Any())
	assert.Equal(t, "", Value{}.String())
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, NumberValue(0).Equal(0))
	assert.True(t, NumberValue(0).Equal("0"))
	assert.True(t, NumberValue(404).Equal(int64(404)))
	assert.False(t, NumberValue(0).Equal(""))
	assert.True(t, TextValue("E").Equal("E"))
	assert.False(t, TextValue("E").Equal("F"))
	assert.False(t, TextValue("1").Equal(1), "a text that looks numeric is not a number")
	assert.True(t, Value{}.Equal(nil))
}

func TestParseExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{in: 1, want: 1, ok: true},
		{in: "-1", want: -1, ok: true},
		{in: "0", want: 0, ok: true},
		{in: 3.0, want: 3, ok: true},
		{in: "1.5"},
		{in: "discarded"},
		{in: ""},
		{in: nil},
		{in: math.Inf(1)},
		{in: 1e300},
		{in: errors.New("1")},
	}
	for _, tt := range tests {
		got, ok := parseExitCode(tt.in)
		assert.Equal(t, tt.ok, ok, "input %#v", tt.in)
		assert.Equal(t, tt.want, got, "input %#v", tt.in)
	}
}
