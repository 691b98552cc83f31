package domain

import (
	"fmt"
	"strconv"
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDict
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDict:
		return "dict"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the closed data union templates read from and resolve to.
// Exactly one variant is active at a time; the zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	dict map[string]Value
	list []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Dict wraps a string-keyed map. The map is shared, not copied; tags that
// mutate nested dictionaries mutate the rendering context they came from.
func Dict(m map[string]Value) Value {
	if m == nil {
		m = make(map[string]Value)
	}
	return Value{kind: KindDict, dict: m}
}

// List wraps an ordered sequence of values.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload. ok is false for every non-bool
// variant; no other variant coerces to bool.
func (v Value) AsBool() (value, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// IsFalse reports whether the value is the explicit boolean false. The
// logical operators treat only this as false; null and non-bool values
// count as "not false".
func (v Value) IsFalse() bool { return v.kind == KindBool && !v.b }

// AsFloat returns the numeric payload, promoting int to float. Every other
// variant fails the coercion.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsDict returns the dictionary payload.
func (v Value) AsDict() (map[string]Value, bool) {
	if v.kind != KindDict {
		return nil, false
	}
	return v.dict, true
}

// AsList returns the list payload.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// StringValue renders the value as output text. Scalars format naturally
// and null contributes nothing; dictionaries and lists are not
// representable and report ok=false.
func (v Value) StringValue() (string, bool) {
	switch v.kind {
	case KindNull:
		return "", true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindInt:
		return strconv.FormatInt(v.i, 10), true
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64), true
	case KindString:
		return v.s, true
	default:
		return "", false
	}
}

// Equal compares by variant and payload. Values of different variants are
// never equal; int and float do not compare numerically across variants.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindDict:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for k, a := range v.dict {
			b, ok := o.dict[k]
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i, a := range v.list {
			if !a.Equal(o.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface converts the value back into plain Go data (map[string]any,
// []any and scalars), suitable for JSON encoding.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindDict:
		m := make(map[string]any, len(v.dict))
		for k, item := range v.dict {
			m[k] = item.Interface()
		}
		return m
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}
		return items
	default:
		return nil
	}
}

// FromAny lifts plain Go data (as produced by encoding/json or yaml.v3)
// into the value union. Unrecognized types degrade to their string form.
func FromAny(in any) Value {
	switch t := in.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Int(int64(t))
	case uint64:
		return Int(int64(t))
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case string:
		return String(t)
	case map[string]any:
		return Dict(fromAnyMap(t))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return List(items...)
	default:
		return String(fmt.Sprint(t))
	}
}

func fromAnyMap(m map[string]any) map[string]Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = FromAny(v)
	}
	return out
}
