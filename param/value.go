// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package param

import (
	"encoding/json"
	"errors"
	"fmt"
)

const badParamTypeMsg = "reqx/param: invalid type (for a parameter value " +
	"use nil, bool, string, int, int64, float64, []interface{}, " +
	"map[string]interface{}, or Value)"

// A Kind identifies which shape a Value holds.
type Kind int

// The closed set of value kinds. A Value never holds anything outside
// this set.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// A Value is one JSON-encodable parameter value. The zero value is
// null.
//
// Value is immutable: construct one with Null, Bool, Number, Int,
// String, Array, Object, or From, and discard it after use. Copying a
// Value is cheap and safe.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	a    []Value
	o    map[string]Value
}

// Values is a parameter mapping from string keys to values. When a
// request descriptor carries a non-nil Values, it is serialized as a
// single JSON object and sent as the request body.
type Values map[string]Value

// Null is the null value. It is identical to the zero Value.
var Null = Value{}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value.
//
// Non-finite numbers (NaN, ±Inf) are representable as a Value but are
// not encodable as JSON, so serializing them fails with the underlying
// encoding/json error.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// Int returns a numeric value from an integer.
func Int(i int) Value {
	return Value{kind: KindNumber, n: float64(i)}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array returns an array value containing the given elements in order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, a: elems}
}

// Object returns an object value containing a copy of the given
// members.
func Object(members map[string]Value) Value {
	o := make(map[string]Value, len(members))
	for k, v := range members {
		o[k] = v
	}
	return Value{kind: KindObject, o: o}
}

// From converts a generic Go value to a Value.
//
// The value parameter may be nil (null), or it may be a bool, string,
// int, int64, float64, []interface{}, map[string]interface{}, or
// Value. Array and object elements are converted recursively using the
// same rules. Any other type results in an error.
func From(value interface{}) (Value, error) {
	switch x := value.(type) {
	case nil:
		return Null, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(x), nil
	case int64:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case []interface{}:
		a := make([]Value, len(x))
		for i, elem := range x {
			v, err := From(elem)
			if err != nil {
				return Null, err
			}
			a[i] = v
		}
		return Value{kind: KindArray, a: a}, nil
	case map[string]interface{}:
		o := make(map[string]Value, len(x))
		for k, elem := range x {
			v, err := From(elem)
			if err != nil {
				return Null, err
			}
			o[k] = v
		}
		return Value{kind: KindObject, o: o}, nil
	default:
		return Null, errors.New(badParamTypeMsg)
	}
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind {
	return v.kind
}

// MarshalJSON implements the json.Marshaler interface. The switch is
// exhaustive over the closed kind set.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.a == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.a)
	case KindObject:
		if v.o == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.o)
	default:
		return nil, fmt.Errorf("reqx/param: unknown kind %d", v.kind)
	}
}

// String returns the JSON encoding of the value, for debugging. If the
// value is not encodable, String returns the error text instead.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "!" + err.Error()
	}
	return string(b)
}

// Clone returns a copy of vs sharing the contained values. Values are
// immutable, so the copy is as deep as it needs to be. A nil receiver
// yields a nil result.
func (vs Values) Clone() Values {
	if vs == nil {
		return nil
	}
	c := make(Values, len(vs))
	for k, v := range vs {
		c[k] = v
	}
	return c
}
