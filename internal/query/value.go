// Package query implements the list view query engine: field access,
// predicate matching, typed stable sorting and pagination over an
// in-memory collection.
package query

import (
	"strconv"
	"time"
)

// ValueType identifies the dynamic type held by a Value.
type ValueType int

const (
	TypeString ValueType = iota
	TypeTime
	TypeNumber
	TypeBool
)

// String returns the type name.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeTime:
		return "time"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a field value extracted from an entity.
type Value struct {
	Type ValueType
	Str  string
	Time time.Time
	Num  float64
	Bool bool
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{Type: TypeString, Str: s} }

// TimeValue wraps t.
func TimeValue(t time.Time) Value { return Value{Type: TypeTime, Time: t} }

// NumberValue wraps n.
func NumberValue(n float64) Value { return Value{Type: TypeNumber, Num: n} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{Type: TypeBool, Bool: b} }

// Text returns the string form used for search and equality filters.
// Times render as YYYY-MM-DD dates in UTC.
func (v Value) Text() string {
	switch v.Type {
	case TypeTime:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.UTC().Format(time.DateOnly)
	case TypeNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}
