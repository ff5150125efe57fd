package db

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind is the wire type a parameter is bound with.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindBool:
		return "BOOL"
	case KindText:
		return "TEXT"
	default:
		return "NULL"
	}
}

// Value is a parameter value tagged with its Kind.
type Value struct {
	kind Kind
	i    int64
	b    bool
	s    string
}

func Int(v int64) Value   { return Value{kind: KindInt, i: v} }
func Bool(v bool) Value   { return Value{kind: KindBool, b: v} }
func Text(v string) Value { return Value{kind: KindText, s: v} }
func Null() Value         { return Value{} }

func (v Value) Kind() Kind { return v.kind }

// Any returns the value handed to the driver.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	case KindText:
		return v.s
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	default:
		return "NULL"
	}
}

// Infer tags a plain Go value. Integers win over booleans, booleans over
// strings, and everything else (nil, floats, slices, ...) binds as NULL.
func Infer(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint:
		return uintValue(uint64(x))
	case uint64:
		return uintValue(x)
	case bool:
		return Bool(x)
	case string:
		return Text(x)
	default:
		return Null()
	}
}

// uintValue keeps values above MaxInt64 exact by sending their decimal text.
func uintValue(x uint64) Value {
	if x > math.MaxInt64 {
		return Text(strconv.FormatUint(x, 10))
	}
	return Int(int64(x))
}

// BoundParameter is one entry of the bind list built for a single execution.
type BoundParameter struct {
	Placeholder string
	Value       Value
}

// Name is the placeholder without its sigil.
func (p BoundParameter) Name() string {
	return strings.TrimPrefix(p.Placeholder, ":")
}

func (p BoundParameter) Kind() Kind {
	return p.Value.Kind()
}

// Bind converts named parameters into a bind list, one entry per name,
// ordered by name. Names are not checked against any SQL text.
func Bind(params map[string]any) []BoundParameter {
	if len(params) == 0 {
		return nil
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	bound := make([]BoundParameter, 0, len(names))
	for _, name := range names {
		bound = append(bound, BoundParameter{
			Placeholder: ":" + name,
			Value:       Infer(params[name]),
		})
	}
	return bound
}
