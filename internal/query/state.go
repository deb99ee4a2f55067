package query

// State is the query state owned by one list view session.
type State struct {
	Search  string
	Filters Filters
	Sort    SortSpec
	Page    int
}

// NewState returns the initial state on page 1 with the given sort.
func NewState(sort SortSpec) State {
	if sort.Order == "" {
		sort.Order = OrderAsc
	}
	return State{Sort: sort, Page: 1}
}

// WithSearch changes the search term and returns to page 1.
func (s State) WithSearch(term string) State {
	s.Search = term
	s.Page = 1
	return s
}

// WithFilter selects value for the named filter and returns to page 1.
func (s State) WithFilter(name, value string) State {
	s.Filters = s.Filters.With(name, value)
	s.Page = 1
	return s
}

// WithDateRange selects a date range for the named filter and returns to page 1.
func (s State) WithDateRange(name string, r DateRange) State {
	s.Filters = s.Filters.WithRange(name, r)
	s.Page = 1
	return s
}

// WithSort changes the sort and keeps the page. Run clamps it afterwards.
func (s State) WithSort(spec SortSpec) State {
	if spec.Order == "" {
		spec.Order = OrderAsc
	}
	s.Sort = spec
	return s
}

// WithPage moves to page. Run clamps it afterwards.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// Narrowed reports whether a search term or filter is active.
func (s State) Narrowed() bool {
	return s.Search != "" || s.Filters.Active()
}

// Clamp returns the state with Page inside [1, max(1, totalPages)].
func (s State) Clamp(totalPages int) State {
	s.Page = GotoPage(s.Page, totalPages)
	return s
}
