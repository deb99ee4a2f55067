package settings

import (
	"slices"

	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

// Capture extracts the remembered part of a query state.
func Capture(state query.State) ViewSettings {
	v := ViewSettings{
		SortBy:    state.Sort.Field,
		SortOrder: string(state.Sort.Order),
	}
	for name, value := range state.Filters.Values {
		if value == "" || value == query.All {
			continue
		}
		if v.Filters == nil {
			v.Filters = map[string]string{}
		}
		v.Filters[name] = value
	}
	return v
}

// Restore builds the initial state for view from remembered settings.
// Values the view no longer accepts fall back to its defaults.
func Restore(view views.View, v ViewSettings) query.State {
	sort := view.DefaultSort()
	if slices.Contains(view.SortFields(), v.SortBy) {
		sort = query.SortSpec{Field: v.SortBy, Order: query.OrderAsc}
		if order, err := query.ParseOrder(v.SortOrder); err == nil {
			sort.Order = order
		}
	}
	state := query.NewState(sort)

	for _, def := range view.Filters() {
		value, ok := v.Filters[def.Name]
		if !ok || def.Type != query.FilterEquals {
			continue
		}
		if len(def.Options) > 0 && !slices.Contains(def.Options, value) {
			continue
		}
		state = state.WithFilter(def.Name, value)
	}
	return state
}
