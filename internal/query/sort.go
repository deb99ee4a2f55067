package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is the sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// IsValid checks if the order is valid.
func (o Order) IsValid() bool {
	return o == OrderAsc || o == OrderDesc
}

// String returns the string representation of the order.
func (o Order) String() string {
	return string(o)
}

// Toggle returns the opposite direction.
func (o Order) Toggle() Order {
	if o == OrderDesc {
		return OrderAsc
	}
	return OrderDesc
}

// ParseOrder parses a string into an Order. An empty string is ascending.
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return OrderAsc, nil
	}
	o := Order(strings.ToLower(s))
	if !o.IsValid() {
		return "", fmt.Errorf("invalid sort order: %s (must be asc or desc)", s)
	}
	return o, nil
}

// SortSpec selects the active sort field and direction.
// An empty Field keeps the collection order.
type SortSpec struct {
	Field string
	Order Order
}

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "en"

// NewCollator returns a collator for locale, falling back to English when the
// tag cannot be parsed. Collators are not safe for concurrent use.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return collate.New(tag)
}

// Comparator builds an ordering over T for spec. Strings compare with coll,
// times by instant, numbers by sign of difference and false before true.
// Absent values order before present ones ascending. Descending negates.
func Comparator[T any](schema *Schema[T], spec SortSpec, coll *collate.Collator) func(a, b T) int {
	field, ok := schema.Field(spec.Field)
	if !ok || field.Get == nil {
		return func(a, b T) int { return 0 }
	}
	if coll == nil {
		coll = NewCollator(DefaultLocale)
	}
	sign := 1
	if spec.Order == OrderDesc {
		sign = -1
	}
	return func(a, b T) int {
		va, okA := field.Get(a)
		vb, okB := field.Get(b)
		return sign * compareValues(va, okA, vb, okB, coll)
	}
}

func compareValues(a Value, okA bool, b Value, okB bool, coll *collate.Collator) int {
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case TypeTime:
		return a.Time.Compare(b.Time)
	case TypeNumber:
		return cmp.Compare(a.Num, b.Num)
	case TypeBool:
		switch {
		case a.Bool == b.Bool:
			return 0
		case !a.Bool:
			return -1
		default:
			return 1
		}
	default:
		return coll.CompareString(a.Str, b.Str)
	}
}

// Sort returns a stably sorted copy of items.
func Sort[T any](items []T, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}
