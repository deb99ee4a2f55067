// Package views binds each HR collection to the query engine: its fields,
// searchable columns, filter dimensions, default sort and table layout.
package views

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
)

// Column is one displayed column, read from a schema field path.
type Column struct {
	Header string
	Path   string
	Width  int
}

// View runs list queries over raw records of one collection.
type View interface {
	Kind() domain.Kind
	Noun() string
	Columns() []Column
	SortFields() []string
	Filters() []query.FilterDef
	DefaultSort() query.SortSpec
	// DateFilter names the date-range dimension targeted by --from/--to.
	DateFilter() string
	Run(raw []json.RawMessage, state query.State, opts query.Options) (Page, error)
}

// Page is one rendered page of a list view.
type Page struct {
	Kind          domain.Kind
	Noun          string
	Columns       []Column
	Rows          [][]string
	Items         []any
	FilteredCount int
	TotalCount    int
	Page          int
	PageSize      int
	TotalPages    int
	PageNumbers   []int
	Narrowed      bool

	lookup func(item any, path string) (query.Value, bool, error)
}

// Cell renders the field at path of the i-th item the way table cells are
// rendered. Paths name schema fields, e.g. "employee.department.name".
func (p Page) Cell(i int, path string) (string, error) {
	if i < 0 || i >= len(p.Items) {
		return "", fmt.Errorf("item %d out of range", i)
	}
	if p.lookup == nil {
		return "", fmt.Errorf("%s: page has no field lookup", p.Kind)
	}
	v, ok, err := p.lookup(p.Items[i], path)
	if err != nil {
		return "", err
	}
	return cell(v, ok), nil
}

// Empty reports whether there is nothing to show.
func (p Page) Empty() bool {
	return p.TotalPages == 0
}

// Summary returns the header line, e.g. "12 of 25 requests (filtered)".
func (p Page) Summary() string {
	return Summary(p.FilteredCount, p.TotalCount, p.Noun, p.Narrowed)
}

// Summary formats a result count header.
func Summary(filtered, total int, noun string, narrowed bool) string {
	if narrowed {
		return fmt.Sprintf("%d of %d %s (filtered)", filtered, total, noun)
	}
	return fmt.Sprintf("%d %s", total, noun)
}

// definition is the typed View implementation for entity type T.
type definition[T any] struct {
	kind        domain.Kind
	noun        string
	schema      *query.Schema[T]
	columns     []Column
	defaultSort query.SortSpec
	dateFilter  string
}

func (d *definition[T]) Kind() domain.Kind           { return d.kind }
func (d *definition[T]) Noun() string                { return d.noun }
func (d *definition[T]) Columns() []Column           { return append([]Column(nil), d.columns...) }
func (d *definition[T]) SortFields() []string        { return d.schema.Paths() }
func (d *definition[T]) Filters() []query.FilterDef  { return d.schema.Filters() }
func (d *definition[T]) DefaultSort() query.SortSpec { return d.defaultSort }
func (d *definition[T]) DateFilter() string          { return d.dateFilter }

// Run decodes the records and runs the query pipeline over them.
func (d *definition[T]) Run(raw []json.RawMessage, state query.State, opts query.Options) (Page, error) {
	if state.Sort.Field != "" {
		if _, ok := d.schema.Field(state.Sort.Field); !ok {
			return Page{}, fmt.Errorf("%s: unknown sort field %q", d.kind, state.Sort.Field)
		}
	}

	items, err := decodeAll[T](raw)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", d.kind, err)
	}

	res := query.Run(items, state, d.schema, opts)

	page := Page{
		Kind:          d.kind,
		Noun:          d.noun,
		Columns:       d.Columns(),
		Rows:          make([][]string, 0, len(res.Items())),
		Items:         make([]any, 0, len(res.Items())),
		FilteredCount: res.FilteredCount,
		TotalCount:    res.TotalCount,
		Page:          res.Page,
		PageSize:      opts.PageSize,
		TotalPages:    res.TotalPages,
		PageNumbers:   res.PageNumbers,
		Narrowed:      state.Narrowed(),
		lookup:        d.lookup,
	}
	if page.PageSize <= 0 {
		page.PageSize = query.DefaultPageSize
	}
	for _, item := range res.Items() {
		page.Items = append(page.Items, item)
		page.Rows = append(page.Rows, d.row(item))
	}
	return page, nil
}

func (d *definition[T]) lookup(item any, path string) (query.Value, bool, error) {
	if _, ok := d.schema.Field(path); !ok {
		return query.Value{}, false, fmt.Errorf("%s: unknown field %q", d.kind, path)
	}
	entity, ok := item.(T)
	if !ok {
		return query.Value{}, false, fmt.Errorf("%s: unexpected item type %T", d.kind, item)
	}
	v, found := d.schema.Get(entity, path)
	return v, found, nil
}

func (d *definition[T]) row(item T) []string {
	cells := make([]string, len(d.columns))
	for i, col := range d.columns {
		v, ok := d.schema.Get(item, col.Path)
		cells[i] = cell(v, ok)
	}
	return cells
}

func cell(v query.Value, ok bool) string {
	if !ok {
		return "-"
	}
	switch v.Type {
	case query.TypeTime:
		t := v.Time.UTC()
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format(time.DateOnly)
		}
		return t.Format("2006-01-02 15:04")
	case query.TypeBool:
		if v.Bool {
			return "yes"
		}
		return "no"
	case query.TypeNumber:
		return v.Text()
	default:
		if v.Str == "" {
			return "-"
		}
		return v.Str
	}
}

func decodeAll[T any](raw []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// RecordID returns the "id" of a raw record.
func RecordID(raw json.RawMessage) (string, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode record: %w", err)
	}
	v, ok := query.Lookup(doc, "id")
	if !ok {
		return "", fmt.Errorf("record has no id")
	}
	id := v.Text()
	if id == "" {
		return "", fmt.Errorf("record has an empty id")
	}
	return id, nil
}
