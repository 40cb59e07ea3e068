package schema

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind identifies which variant arm a Value carries.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindInt
	KindText
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindText:
		return "TEXT"
	case KindFloat:
		return "FLOAT"
	case KindBool:
		return "BOOL"
	}
	return "INVALID"
}

// Value is a tagged variant over the four supported cell types. Exactly one
// arm is meaningful, selected by the kind tag. The zero Value is invalid and
// never stored in a table.
type Value struct {
	kind Kind
	i    int64
	s    string
	f    float64
	b    bool
}

func Int(v int64) Value     { return Value{kind: KindInt, i: v} }
func Text(v string) Value   { return Value{kind: KindText, s: v} }
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func Bool(v bool) Value     { return Value{kind: KindBool, b: v} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

func (v Value) AsInt() int64     { return v.i }
func (v Value) AsText() string   { return v.s }
func (v Value) AsFloat() float64 { return v.f }
func (v Value) AsBool() bool     { return v.b }

// Equal reports whether two values have the same kind and content. Values of
// different kinds are never equal, so INT 1 does not match FLOAT 1.0.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Key returns a canonical string for hash-index buckets. The kind prefix
// keeps INT 1, FLOAT 1 and TEXT "1" in distinct buckets.
func (v Value) Key() string {
	switch v.kind {
	case KindInt:
		return "i:" + strconv.FormatInt(v.i, 10)
	case KindText:
		return "t:" + v.s
	case KindFloat:
		return "f:" + strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return "b:" + strconv.FormatBool(v.b)
	}
	return ""
}

// String renders the value the way the REPL prints it.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindText:
		return v.s
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "<invalid>"
}

// Native returns the value as a plain Go value, for JSON response payloads.
func (v Value) Native() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindText:
		return v.s
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	}
	return nil
}

// valueRecord is the persisted form. The explicit type tag keeps INT and
// FLOAT distinguishable after a JSON round trip.
type valueRecord struct {
	T string          `json:"t"`
	V json.RawMessage `json:"v"`
}

// MarshalJSON encodes the value as {"t":"INT","v":1}.
func (v Value) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(v.Native())
	if err != nil {
		return nil, err
	}
	return json.Marshal(valueRecord{T: v.kind.String(), V: raw})
}

// UnmarshalJSON decodes the tagged form, rejecting unknown tags and payloads
// that do not match the tag.
func (v *Value) UnmarshalJSON(data []byte) error {
	var rec valueRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	switch rec.T {
	case "INT":
		var i int64
		if err := json.Unmarshal(rec.V, &i); err != nil {
			return fmt.Errorf("bad INT payload: %w", err)
		}
		*v = Int(i)
	case "TEXT":
		var s string
		if err := json.Unmarshal(rec.V, &s); err != nil {
			return fmt.Errorf("bad TEXT payload: %w", err)
		}
		*v = Text(s)
	case "FLOAT":
		var f float64
		if err := json.Unmarshal(rec.V, &f); err != nil {
			return fmt.Errorf("bad FLOAT payload: %w", err)
		}
		*v = Float(f)
	case "BOOL":
		var b bool
		if err := json.Unmarshal(rec.V, &b); err != nil {
			return fmt.Errorf("bad BOOL payload: %w", err)
		}
		*v = Bool(b)
	default:
		return fmt.Errorf("unknown value tag '%s'", rec.T)
	}
	return nil
}

// FromNative converts a decoded JSON value into a Value. Numbers must arrive
// as json.Number so the INT/FLOAT distinction survives: a literal without a
// decimal point or exponent is an INT, anything else a FLOAT. This mirrors
// the source-literal rule used by the SQL parser; there is no coercion
// against a target column here.
func FromNative(raw any) (Value, error) {
	switch x := raw.(type) {
	case string:
		return Text(x), nil
	case bool:
		return Bool(x), nil
	case json.Number:
		lit := x.String()
		if !strings.ContainsAny(lit, ".eE") {
			i, err := x.Int64()
			if err != nil {
				return Value{}, fmt.Errorf("bad integer literal '%s': %w", lit, err)
			}
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("bad float literal '%s': %w", lit, err)
		}
		return Float(f), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case nil:
		return Value{}, fmt.Errorf("null is not a storable value")
	}
	return Value{}, fmt.Errorf("unsupported value %v (%T)", raw, raw)
}
