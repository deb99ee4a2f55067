package views

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
)

func TestParseParams(t *testing.T) {
	view, err := NewRegistry().Get(domain.KindEmployees)
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		wantErr string
		check   func(t *testing.T, s query.State, pageSize int)
	}{
		{
			name:  "defaults",
			query: "",
			check: func(t *testing.T, s query.State, pageSize int) {
				assert.Equal(t, view.DefaultSort(), s.Sort)
				assert.Equal(t, 1, s.Page)
				assert.Equal(t, 20, pageSize)
				assert.False(t, s.Narrowed())
			},
		},
		{
			name:  "sort defaults to ascending",
			query: "sort=lastName",
			check: func(t *testing.T, s query.State, _ int) {
				assert.Equal(t, query.SortSpec{Field: "lastName", Order: query.OrderAsc}, s.Sort)
			},
		},
		{
			name:  "search filters and page",
			query: "search=+ana+&status=ACTIVE&department=Engineering&page=3&page_size=5",
			check: func(t *testing.T, s query.State, pageSize int) {
				assert.Equal(t, "ana", s.Search)
				assert.Equal(t, "ACTIVE", s.Filters.Value("status"))
				assert.Equal(t, "Engineering", s.Filters.Value("department"))
				assert.Equal(t, 3, s.Page)
				assert.Equal(t, 5, pageSize)
			},
		},
		{
			name:  "all clears a filter",
			query: "status=all",
			check: func(t *testing.T, s query.State, _ int) {
				assert.False(t, s.Narrowed())
			},
		},
		{
			name:  "date range",
			query: "hired_from=2024-01-01",
			check: func(t *testing.T, s query.State, _ int) {
				r := s.Filters.Range("hired")
				require.NotNil(t, r.From)
				assert.Nil(t, r.To)
			},
		},
		{
			name:  "page size is capped",
			query: "page_size=5000",
			check: func(t *testing.T, _ query.State, pageSize int) {
				assert.Equal(t, MaxPageSize, pageSize)
			},
		},
		{name: "unknown sort", query: "sort=shoeSize", wantErr: "unknown sort field"},
		{name: "bad order", query: "order=up", wantErr: "order"},
		{name: "bad status", query: "status=RETIRED", wantErr: "invalid status"},
		{name: "bad date", query: "hired_to=yesterday", wantErr: "hired"},
		{name: "zero page", query: "page=0", wantErr: "invalid page"},
		{name: "negative page size", query: "page_size=-1", wantErr: "invalid page_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			state, pageSize, err := ParseParams(view, params, 20)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, state, pageSize)
		})
	}
}
