package query

import (
	"encoding/json"
	"strings"
	"time"
)

// Getter extracts one field from an entity. It reports false when the
// field, or any optional object on the way to it, is absent.
type Getter[T any] func(T) (Value, bool)

// Field is one named, typed, sortable attribute of an entity.
type Field[T any] struct {
	Path string
	Type ValueType
	Get  Getter[T]
}

// StringField declares a string field.
func StringField[T any](path string, get func(T) (string, bool)) Field[T] {
	return Field[T]{Path: path, Type: TypeString, Get: func(e T) (Value, bool) {
		s, ok := get(e)
		if !ok {
			return Value{}, false
		}
		return StringValue(s), true
	}}
}

// TimeField declares a time field. Zero times count as absent.
func TimeField[T any](path string, get func(T) (time.Time, bool)) Field[T] {
	return Field[T]{Path: path, Type: TypeTime, Get: func(e T) (Value, bool) {
		t, ok := get(e)
		if !ok || t.IsZero() {
			return Value{}, false
		}
		return TimeValue(t), true
	}}
}

// NumberField declares a numeric field.
func NumberField[T any](path string, get func(T) (float64, bool)) Field[T] {
	return Field[T]{Path: path, Type: TypeNumber, Get: func(e T) (Value, bool) {
		n, ok := get(e)
		if !ok {
			return Value{}, false
		}
		return NumberValue(n), true
	}}
}

// BoolField declares a boolean field.
func BoolField[T any](path string, get func(T) (bool, bool)) Field[T] {
	return Field[T]{Path: path, Type: TypeBool, Get: func(e T) (Value, bool) {
		b, ok := get(e)
		if !ok {
			return Value{}, false
		}
		return BoolValue(b), true
	}}
}

// Schema describes how the engine reads one entity type: its fields,
// which of them are searched, and which filter dimensions exist.
type Schema[T any] struct {
	fields     map[string]Field[T]
	order      []string
	searchable []string
	filters    []FilterDef
}

// NewSchema creates a schema from the given fields. Later fields with the
// same path replace earlier ones.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		if _, exists := s.fields[f.Path]; !exists {
			s.order = append(s.order, f.Path)
		}
		s.fields[f.Path] = f
	}
	return s
}

// Searchable sets the fields matched by the free-text search.
func (s *Schema[T]) Searchable(paths ...string) *Schema[T] {
	s.searchable = append([]string(nil), paths...)
	return s
}

// WithFilters declares the filter dimensions of the view.
func (s *Schema[T]) WithFilters(defs ...FilterDef) *Schema[T] {
	s.filters = append(s.filters, defs...)
	return s
}

// Field returns the field declared at path.
func (s *Schema[T]) Field(path string) (Field[T], bool) {
	f, ok := s.fields[path]
	return f, ok
}

// Paths returns the declared field paths in declaration order.
func (s *Schema[T]) Paths() []string {
	return append([]string(nil), s.order...)
}

// SearchablePaths returns the searched field paths.
func (s *Schema[T]) SearchablePaths() []string {
	return append([]string(nil), s.searchable...)
}

// Filters returns the declared filter dimensions.
func (s *Schema[T]) Filters() []FilterDef {
	return append([]FilterDef(nil), s.filters...)
}

// FilterDef returns the filter dimension with the given name.
func (s *Schema[T]) FilterDef(name string) (FilterDef, bool) {
	for _, def := range s.filters {
		if def.Name == name {
			return def, true
		}
	}
	return FilterDef{}, false
}

// Get resolves path on entity. Unknown paths and absent values report false.
func (s *Schema[T]) Get(entity T, path string) (Value, bool) {
	f, ok := s.fields[path]
	if !ok || f.Get == nil {
		return Value{}, false
	}
	return f.Get(entity)
}

// SearchValues returns the text of every present searchable field.
func (s *Schema[T]) SearchValues(entity T) []string {
	values := make([]string, 0, len(s.searchable))
	for _, path := range s.searchable {
		if v, ok := s.Get(entity, path); ok {
			values = append(values, v.Text())
		}
	}
	return values
}

// Lookup resolves a dotted path over a decoded JSON document
// (nested map[string]any). Missing keys, nulls and non-object
// intermediates report false.
func Lookup(doc any, path string) (Value, bool) {
	if path == "" {
		return Value{}, false
	}
	current := doc
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return Value{}, false
		}
		current, ok = obj[key]
		if !ok {
			return Value{}, false
		}
	}

	switch v := current.(type) {
	case string:
		return StringValue(v), true
	case float64:
		return NumberValue(v), true
	case int:
		return NumberValue(float64(v)), true
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return StringValue(v.String()), true
		}
		return NumberValue(n), true
	case bool:
		return BoolValue(v), true
	case time.Time:
		return TimeValue(v), true
	default:
		return Value{}, false
	}
}
