package views

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/cristianoliveira/hrdesk/internal/query"
)

// MaxPageSize caps page_size.
const MaxPageSize = 100

// ParseParams builds the query state for view from request parameters:
// search, sort, order, page, page_size, one parameter per equality filter
// and <name>_from / <name>_to per date-range filter. It returns the state
// and the page size. Parameters that name no filter are ignored.
func ParseParams(view View, params url.Values, defaultPageSize int) (query.State, int, error) {
	sort := view.DefaultSort()
	if field := params.Get("sort"); field != "" {
		if !slices.Contains(view.SortFields(), field) {
			return query.State{}, 0, fmt.Errorf("unknown sort field %q", field)
		}
		sort = query.SortSpec{Field: field, Order: query.OrderAsc}
	}
	if o := params.Get("order"); o != "" {
		order, err := query.ParseOrder(o)
		if err != nil {
			return query.State{}, 0, err
		}
		sort.Order = order
	}
	state := query.NewState(sort).WithSearch(strings.TrimSpace(params.Get("search")))

	for _, def := range view.Filters() {
		switch def.Type {
		case query.FilterEquals:
			value := params.Get(def.Name)
			if value == "" {
				continue
			}
			// Filters without declared options take values from the data.
			if len(def.Options) > 0 && !slices.Contains(def.Values(), value) {
				return query.State{}, 0, fmt.Errorf("invalid %s %q (must be one of %s)", def.Name, value, strings.Join(def.Values(), ", "))
			}
			state = state.WithFilter(def.Name, value)
		case query.FilterDateRange:
			from, to := params.Get(def.Name+"_from"), params.Get(def.Name+"_to")
			if from == "" && to == "" {
				continue
			}
			r, err := query.ParseDateRange(from, to)
			if err != nil {
				return query.State{}, 0, fmt.Errorf("%s: %w", def.Name, err)
			}
			state = state.WithDateRange(def.Name, r)
		}
	}

	page, err := positiveParam(params, "page", 1)
	if err != nil {
		return query.State{}, 0, err
	}
	pageSize, err := positiveParam(params, "page_size", defaultPageSize)
	if err != nil {
		return query.State{}, 0, err
	}
	return state.WithPage(page), min(pageSize, MaxPageSize), nil
}

func positiveParam(params url.Values, name string, def int) (int, error) {
	raw := params.Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q (must be a positive integer)", name, raw)
	}
	return n, nil
}
