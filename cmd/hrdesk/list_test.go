package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/format"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

func TestListCompact(t *testing.T) {
	svc, _ := newSyncedService(t)
	c := NewListCmd(func() (listClient, error) { return svc, nil })

	out, err := execute(t, c, "notifications", "--filter", "type=WARNING", "--sort", "createdAt", "--page", "2", "--format", "compact")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "n22\tWARNING\t"))
	assert.True(t, strings.HasPrefix(lines[1], "n24\tWARNING\t"))
}

func TestListJSON(t *testing.T) {
	svc, _ := newSyncedService(t)
	c := NewListCmd(func() (listClient, error) { return svc, nil })

	out, err := execute(t, c, "notifications", "--search", "notice 1", "--from", "2024-03-10", "--to", "2024-03-12", "--format", "json")
	require.NoError(t, err)

	var doc format.PageDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 3, doc.FilteredCount)
	assert.Equal(t, 25, doc.TotalCount)
	assert.Equal(t, "3 of 25 notifications (filtered)", doc.Summary)
}

func TestListTable(t *testing.T) {
	svc, _ := newSyncedService(t)
	c := NewListCmd(func() (listClient, error) { return svc, nil })

	out, err := execute(t, c, "notifications", "--page-size", "5", "--page", "99", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "25 notifications")
	assert.Contains(t, out, "Page 5 of 5  1 2 3 4 [5]")
}

func TestListTemplate(t *testing.T) {
	svc, _ := newSyncedService(t)
	c := NewListCmd(func() (listClient, error) { return svc, nil })

	out, err := execute(t, c, "notifications", "--sort", "createdAt", "--page-size", "2", "--template", "{{id}}: {{title}} [{{isRead}}]")
	require.NoError(t, err)
	assert.Equal(t, "n1: Notice 1 [no]\nn2: Notice 2 [no]\n", out)

	_, err = execute(t, NewListCmd(func() (listClient, error) { return svc, nil }), "notifications", "--template", "{{salary}}")
	assert.ErrorContains(t, err, "unknown field")
}

func TestListNoResults(t *testing.T) {
	svc, _ := newSyncedService(t)
	c := NewListCmd(func() (listClient, error) { return svc, nil })

	out, err := execute(t, c, "notifications", "--filter", "type=ERROR", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, format.NoResults)
}

func TestListErrors(t *testing.T) {
	svc, _ := newSyncedService(t)
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown kind", []string{"payroll"}, "payroll"},
		{"missing kind", []string{}, "accepts 1 arg"},
		{"bad format", []string{"notifications", "--format", "xml"}, "xml"},
		{"filter without value", []string{"notifications", "--filter", "type"}, "expected name=value"},
		{"unknown filter", []string{"notifications", "--filter", "level=INFO"}, "available: type, read"},
		{"bad filter value", []string{"notifications", "--filter", "type=LOUD"}, "invalid type"},
		{"bad sort", []string{"notifications", "--sort", "salary"}, "unknown sort field"},
		{"bad date", []string{"notifications", "--from", "soon"}, "invalid from date"},
		{"negative page", []string{"notifications", "--page", "-2"}, "invalid page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewListCmd(func() (listClient, error) { return svc, nil })
			_, err := execute(t, c, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestListParams(t *testing.T) {
	view, err := views.NewRegistry().Get(domain.KindLeaveRequests)
	require.NoError(t, err)

	params, err := listParams(view, listOptions{
		search:   "maria",
		filters:  []string{"status = PENDING", "department=Sales"},
		from:     "2024-03-01",
		page:     2,
		pageSize: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", params.Get("search"))
	assert.Equal(t, "PENDING", params.Get("status"))
	assert.Equal(t, "Sales", params.Get("department"))
	assert.Equal(t, "2024-03-01", params.Get("start_from"))
	assert.Empty(t, params.Get("start_to"))
	assert.Equal(t, "2", params.Get("page"))
	assert.Equal(t, "25", params.Get("page_size"))

	_, err = listParams(view, listOptions{filters: []string{"start=2024-03-01"}})
	assert.ErrorContains(t, err, "unknown filter")
}

func TestNewListCmdPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewListCmd(nil) })
}
