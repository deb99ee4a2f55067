package query

import (
	"fmt"
	"maps"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/search"
)

// All is the filter sentinel meaning "no constraint".
const All = "all"

// FilterType identifies how a filter dimension is applied.
type FilterType int

const (
	// FilterEquals requires the field's text form to equal the selected value.
	FilterEquals FilterType = iota
	// FilterDateRange requires the field's time to fall inside an inclusive range.
	FilterDateRange
)

// FilterDef declares one filter dimension of a view.
type FilterDef struct {
	Name    string
	Field   string
	Type    FilterType
	Options []string
}

// Values returns the selectable values including the All sentinel.
func (d FilterDef) Values() []string {
	return append([]string{All}, d.Options...)
}

// DateRange is an inclusive time range. A nil bound imposes no constraint.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Active reports whether the range constrains anything.
func (r DateRange) Active() bool {
	return r.From != nil || r.To != nil
}

// Contains reports whether from <= t <= to.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// ParseDateRange parses optional YYYY-MM-DD (or RFC 3339) bounds. A date-only
// upper bound covers that whole day.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		t, _, err := parseBound(from)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid from date %q: %w", from, err)
		}
		r.From = &t
	}
	if to != "" {
		t, dateOnly, err := parseBound(to)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid to date %q: %w", to, err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.To = &t
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return DateRange{}, fmt.Errorf("date range ends before it starts: %s > %s", from, to)
	}
	return r, nil
}

func parseBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}

// Filters holds the selected value of each filter dimension.
// Unset dimensions behave like All.
type Filters struct {
	Values map[string]string
	Ranges map[string]DateRange
}

// Value returns the selected value for name, or All.
func (f Filters) Value(name string) string {
	if v, ok := f.Values[name]; ok && v != "" {
		return v
	}
	return All
}

// Range returns the date range selected for name.
func (f Filters) Range(name string) DateRange {
	return f.Ranges[name]
}

// With returns a copy of f with name set to value.
func (f Filters) With(name, value string) Filters {
	out := f.clone()
	if value == "" || value == All {
		delete(out.Values, name)
	} else {
		out.Values[name] = value
	}
	return out
}

// WithRange returns a copy of f with the date range for name replaced.
func (f Filters) WithRange(name string, r DateRange) Filters {
	out := f.clone()
	if r.Active() {
		out.Ranges[name] = r
	} else {
		delete(out.Ranges, name)
	}
	return out
}

// Active reports whether any dimension is constrained.
func (f Filters) Active() bool {
	for _, v := range f.Values {
		if v != "" && v != All {
			return true
		}
	}
	for _, r := range f.Ranges {
		if r.Active() {
			return true
		}
	}
	return false
}

func (f Filters) clone() Filters {
	out := Filters{
		Values: make(map[string]string, len(f.Values)),
		Ranges: make(map[string]DateRange, len(f.Ranges)),
	}
	maps.Copy(out.Values, f.Values)
	maps.Copy(out.Ranges, f.Ranges)
	return out
}

// Matcher evaluates the search term and filters against entities.
type Matcher[T any] struct {
	schema   *Schema[T]
	provider search.Provider
}

// NewMatcher creates a matcher. A nil provider searches by
// case-insensitive substring.
func NewMatcher[T any](schema *Schema[T], provider search.Provider) *Matcher[T] {
	if provider == nil {
		provider = search.NewSubstringProvider()
	}
	return &Matcher[T]{schema: schema, provider: provider}
}

// Matches reports whether entity satisfies the search term and every
// active filter.
func (m *Matcher[T]) Matches(entity T, term string, filters Filters) bool {
	if term != "" && !m.provider.Match(m.schema.SearchValues(entity), term) {
		return false
	}
	for _, def := range m.schema.filters {
		if !m.matchFilter(entity, def, filters) {
			return false
		}
	}
	return true
}

func (m *Matcher[T]) matchFilter(entity T, def FilterDef, filters Filters) bool {
	switch def.Type {
	case FilterDateRange:
		r := filters.Range(def.Name)
		if !r.Active() {
			return true
		}
		v, ok := m.schema.Get(entity, def.Field)
		if !ok || v.Type != TypeTime {
			return false
		}
		return r.Contains(v.Time)
	default:
		want := filters.Value(def.Name)
		if want == All {
			return true
		}
		v, ok := m.schema.Get(entity, def.Field)
		if !ok {
			return false
		}
		return v.Text() == want
	}
}

// Filter returns the entities matching term and filters, preserving order.
func (m *Matcher[T]) Filter(items []T, term string, filters Filters) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.Matches(item, term, filters) {
			out = append(out, item)
		}
	}
	return out
}
