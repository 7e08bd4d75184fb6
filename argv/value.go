package argv

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindList
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the value stored for an option: null for a bare flag, a coerced
// scalar, or a list once the option has received a second value.
// The zero Value is null.
type Value struct {
	kind Kind
	num  int64
	flt  float64
	str  string
	list []Value
}

// Null returns the flag value.
func Null() Value { return Value{} }

// IntValue wraps an integer.
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ListValue builds a list from items in the given order.
func ListValue(items ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the flag value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer and true when v is KindInt.
func (v Value) Int() (int64, bool) { return v.num, v.kind == KindInt }

// Float returns the float and true when v is KindFloat.
func (v Value) Float() (float64, bool) { return v.flt, v.kind == KindFloat }

// Str returns the string and true when v is KindString.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// List returns a copy of the list items, or nil when v is not a list.
func (v Value) List() []Value {
	if v.kind != KindList {
		return nil
	}
	return slices.Clone(v.list)
}

// Len is the number of list items, 0 for null and 1 for any scalar.
func (v Value) Len() int {
	switch v.kind {
	case KindNull:
		return 0
	case KindList:
		return len(v.list)
	default:
		return 1
	}
}

// Equal reports whether v and other hold the same variant and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindString:
		return v.str == other.str
	case KindList:
		return slices.EqualFunc(v.list, other.list, Value.Equal)
	default:
		return true
	}
}

// Interface returns v as nil, int64, float64, string or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindString:
		return v.str
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders v for display. Floats always carry a decimal point so
// 3.0 and 3 stay distinguishable.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.flt, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case KindString:
		return v.str
	case KindList:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			if item.kind == KindString {
				b.WriteString(strconv.Quote(item.str))
			} else {
				b.WriteString(item.String())
			}
		}
		b.WriteByte(']')
		return b.String()
	default:
		return "null"
	}
}

// MarshalJSON encodes v as null, a number, a string or an array.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML implements the go-yaml InterfaceMarshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// appendTo adds next to v following the repeat rule: the first repeat makes
// [next, v], later repeats append to the end.
func (v Value) appendTo(next Value) Value {
	if v.kind == KindList {
		v.list = append(v.list, next)
		return v
	}
	return Value{kind: KindList, list: []Value{next, v}}
}
