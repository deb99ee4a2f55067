package query

import (
	"github.com/cristianoliveira/hrdesk/internal/search"
)

// Options tunes a pipeline run.
type Options struct {
	PageSize int
	Provider search.Provider
	Locale   string
}

// Result is the output of one pipeline run.
type Result[T any] struct {
	Window        Window[T]
	FilteredCount int
	TotalCount    int
	Page          int
	TotalPages    int
	PageNumbers   []int
}

// Items returns the entities of the current page.
func (r Result[T]) Items() []T {
	return r.Window.Items
}

// Run filters, sorts and paginates collection for state. The requested page
// is clamped into [1, max(1, TotalPages)]. collection is never modified.
func Run[T any](collection []T, state State, schema *Schema[T], opts Options) Result[T] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	matched := NewMatcher(schema, opts.Provider).Filter(collection, state.Search, state.Filters)
	if state.Sort.Field != "" {
		matched = Sort(matched, Comparator(schema, state.Sort, NewCollator(opts.Locale)))
	}

	totalPages := TotalPages(len(matched), pageSize)
	page := GotoPage(state.Page, totalPages)

	return Result[T]{
		Window:        Paginate(matched, page, pageSize),
		FilteredCount: len(matched),
		TotalCount:    len(collection),
		Page:          page,
		TotalPages:    totalPages,
		PageNumbers:   PageNumbers(page, totalPages),
	}
}
