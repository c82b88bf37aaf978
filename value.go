package gotable

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the closed set of field value types a Record may hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// rank orders kinds when two values of different kinds meet on one column.
// Nulls rank last so that they trail ascending sorts.
func (k Kind) rank() int {
	switch k {
	case KindBool:
		return 0
	case KindNumber:
		return 1
	case KindString:
		return 2
	default:
		return 3
	}
}

// Value is a record field value. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func Null() Value            { return Value{} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Int(i int) Value        { return Number(float64(i)) }
func String(s string) Value  { return Value{kind: KindString, str: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Number returns the payload of a number value and 0 otherwise.
func (v Value) Number() float64 { return v.num }

// Bool returns the payload of a bool value and false otherwise.
func (v Value) Bool() bool { return v.b }

// Text returns the raw string of a string value and an empty string otherwise.
func (v Value) Text() string {
	if v.kind != KindString {
		return ""
	}

	return v.str
}

// String renders the value the way search matching sees it. Numbers use their
// shortest decimal form, switching to exponent notation (1e+21, 1.5e-7) at a
// magnitude of 1e21 or more and below 1e-6. Booleans are true/false; null is
// an empty string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.num)
	case KindString:
		return v.str
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	if abs := math.Abs(n); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Equal reports whether two values hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num || (math.IsNaN(v.num) && math.IsNaN(other.num))
	case KindString:
		return v.str == other.str
	default:
		return true
	}
}

// compareAsc is the ascending total order over values. Strings are compared
// case-insensitively.
func compareAsc(x, y Value) int {
	if x.kind != y.kind {
		return cmp.Compare(x.kind.rank(), y.kind.rank())
	}

	switch x.kind {
	case KindBool:
		switch {
		case x.b == y.b:
			return 0
		case !x.b:
			return -1
		default:
			return 1
		}
	case KindNumber:
		return cmp.Compare(x.num, y.num)
	case KindString:
		return strings.Compare(strings.ToLower(x.str), strings.ToLower(y.str))
	default:
		return 0
	}
}

// ValueOf converts a Go value into a Value. Integers and floats of every width
// (named types included) become numbers, []byte and fmt.Stringer become
// strings, time.Time is rendered as RFC 3339 and nil pointers become null.
// Anything else falls back to its fmt representation.
func ValueOf(v any) Value {
	switch vt := v.(type) {
	case nil:
		return Null()
	case Value:
		return vt
	case string:
		return String(vt)
	case []byte:
		return String(string(vt))
	case bool:
		return Bool(vt)
	case int:
		return Number(float64(vt))
	case int8:
		return Number(float64(vt))
	case int16:
		return Number(float64(vt))
	case int32:
		return Number(float64(vt))
	case int64:
		return Number(float64(vt))
	case uint:
		return Number(float64(vt))
	case uint8:
		return Number(float64(vt))
	case uint16:
		return Number(float64(vt))
	case uint32:
		return Number(float64(vt))
	case uint64:
		return Number(float64(vt))
	case float32:
		return Number(float64(vt))
	case float64:
		return Number(vt)
	case json.Number:
		n, err := vt.Float64()
		if err != nil {
			return String(vt.String())
		}
		return Number(n)
	case time.Time:
		return String(vt.Format(time.RFC3339Nano))
	case fmt.Stringer:
		return String(vt.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	default:
		return String(fmt.Sprint(v))
	}
}

// Interface returns the value as a plain Go value: nil, bool, float64 or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	default:
		return nil
	}
}

// MarshalJSON - implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber && (math.IsNaN(v.num) || math.IsInf(v.num, 0)) {
		return json.Marshal(formatNumber(v.num))
	}

	return json.Marshal(v.Interface())
}

// UnmarshalJSON - implements json.Unmarshaler. Objects and arrays are kept as
// their raw JSON text, and numbers out of float64 range as their literal.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	switch raw.(type) {
	case map[string]any, []any:
		*v = String(string(data))
	default:
		*v = ValueOf(raw)
	}

	return nil
}

// MarshalYAML - implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)
	_ fmt.Stringer     = Value{}
)
