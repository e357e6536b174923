// codes.go: code/level values and numeric coercion for xgx-chain.
//
// Intent:
//   - A code or a severity level is either a number or a text, never both.
//   - Candidates that parse as numbers become numeric; everything else that is
//     non-empty is kept as its textual form.
//   - Empty strings and nil are "absent", never zero.
//
// Conventions (documented, not enforced here):
//   - Text codes are what tag stacks ("[ENOENT]: ..."); numeric codes never do.
//   - Exit codes are integral; fractional numbers are not exit codes.
package xgxchain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindNone valueKind = iota
	kindNumber
	kindText
)

// Value is a resolved code or level. The zero Value is empty.
type Value struct {
	kind valueKind
	num  float64
	text string
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value { return Value{kind: kindNumber, num: n} }

// TextValue returns a textual Value, or the empty Value for "".
func TextValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: kindText, text: s}
}

// ValueOf coerces an arbitrary candidate into a Value.
// nil and "" yield the empty Value; numeric-looking candidates yield numbers;
// anything else yields its fmt.Sprint text.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		if t == "" {
			return Value{}
		}
	}
	if n, ok := parseNumber(v); ok {
		return NumberValue(n)
	}
	return TextValue(fmt.Sprint(v))
}

func (v Value) IsZero() bool   { return v.kind == kindNone }
func (v Value) IsNumber() bool { return v.kind == kindNumber }
func (v Value) IsText() bool   { return v.kind == kindText }

// Number returns the numeric form, if v is a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == kindNumber
}

// Int returns the integral form, if v is an integral number.
func (v Value) Int() (int, bool) {
	if v.kind != kindNumber {
		return 0, false
	}
	return toInt(v.num)
}

// Text returns the textual form, if v is a text.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == kindText
}

// String renders numbers without a trailing fractional part when integral.
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindText:
		return v.text
	default:
		return ""
	}
}

// Any returns nil, an int (integral numbers), a float64, or a string.
func (v Value) Any() any {
	switch v.kind {
	case kindNumber:
		if i, ok := toInt(v.num); ok {
			return i
		}
		return v.num
	case kindText:
		return v.text
	default:
		return nil
	}
}

// Equal reports whether v equals the coerced form of other.
// Equal(0) and Equal("0") are both true for a numeric zero.
func (v Value) Equal(other any) bool {
	o := ValueOf(other)
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case kindNumber:
		return v.num == o.num
	case kindText:
		return v.text == o.text
	default:
		return true
	}
}

// parseNumber converts a candidate into a number. Empty, blank, NaN and
// non-numeric candidates are not numbers; errors never are.
func parseNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case Value:
		return t.Number()
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case uintptr:
		return float64(t), true
	case float32:
		return checkFloat(float64(t))
	case float64:
		return checkFloat(t)
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		return parseNumericText(t)
	case error:
		return 0, false
	case fmt.Stringer:
		return parseNumericText(t.String())
	default:
		return 0, false
	}
}

func checkFloat(f float64) (float64, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseNumericText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return checkFloat(f)
	}
	// 0x/0o/0b literals; a bare leading zero stays decimal (handled above).
	body := strings.TrimLeft(s, "+-")
	if len(body) > 2 && body[0] == '0' && strings.ContainsRune("xXoObB", rune(body[1])) {
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(i), true
		}
	}
	return 0, false
}

// parseExitCode converts a candidate into an integral exit code.
func parseExitCode(v any) (int, bool) {
	f, ok := parseNumber(v)
	if !ok {
		return 0, false
	}
	return toInt(f)
}

func toInt(f float64) (int, bool) {
	if math.IsInf(f, 0) || f != math.Trunc(f) || f >= 1<<63 || f < -(1<<63) {
		return 0, false
	}
	return int(f), true
}
