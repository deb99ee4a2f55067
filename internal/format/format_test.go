package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

func samplePage() views.Page {
	return views.Page{
		Kind: domain.KindLeaveRequests,
		Noun: "requests",
		Columns: []views.Column{
			{Header: "ID", Path: "id", Width: 4},
			{Header: "Employee", Path: "employee.firstName", Width: 12},
			{Header: "Status", Path: "status", Width: 8},
		},
		Rows: [][]string{
			{"l1", "Maria Silva", "PENDING"},
			{"l2", "Alexandra Konstantinou", "APPROVED"},
		},
		Items:         []any{map[string]any{"id": "l1"}, map[string]any{"id": "l2"}},
		FilteredCount: 12,
		TotalCount:    25,
		Page:          2,
		PageSize:      10,
		TotalPages:    2,
		PageNumbers:   []int{1, 2},
		Narrowed:      true,
	}
}

func TestParseFormatterType(t *testing.T) {
	tests := []struct {
		in      string
		want    FormatterType
		wantErr bool
	}{
		{"", FormatterTypeTable, false},
		{"JSON", FormatterTypeJSON, false},
		{" compact ", FormatterTypeCompact, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormatterType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFooter(t *testing.T) {
	tests := []struct {
		name string
		page views.Page
		want string
	}{
		{"no pages", views.Page{Page: 1}, ""},
		{"second of five", views.Page{Page: 2, TotalPages: 5, PageNumbers: []int{1, 2, 3, 4, 5}}, "Page 2 of 5  1 [2] 3 4 5"},
		{"window", views.Page{Page: 7, TotalPages: 12, PageNumbers: []int{5, 6, 7, 8, 9}}, "Page 7 of 12  5 6 [7] 8 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Footer(tt.page))
		})
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeTable).FormatPage(samplePage(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "12 of 25 requests (filtered)", lines[0])
	assert.Equal(t, "ID    Employee      Status", lines[1])
	assert.Equal(t, "l1    Maria Silva   PENDING", lines[2])
	assert.Equal(t, "l2    Alexandra K…  APPROVED", lines[3])
	assert.Equal(t, "Page 2 of 2  1 [2]", lines[4])
}

func TestTableFormatterNoResults(t *testing.T) {
	page := views.Page{Kind: domain.KindEmployees, Noun: "employees", Page: 1, TotalCount: 25, Narrowed: true}
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).FormatPage(page, &buf))
	assert.Equal(t, "0 of 25 employees (filtered)\nNo results\n", buf.String())
}

func TestCompactFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeCompact).FormatPage(samplePage(), &buf))
	assert.Equal(t, "l1\tMaria Silva\tPENDING\nl2\tAlexandra Konstantinou\tAPPROVED\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatterTypeJSON).FormatPage(samplePage(), &buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "leave-requests", doc["kind"])
	assert.Equal(t, "12 of 25 requests (filtered)", doc["summary"])
	assert.Equal(t, float64(12), doc["filtered_count"])
	assert.Equal(t, float64(25), doc["total_count"])
	assert.Len(t, doc["items"], 2)
	assert.Equal(t, map[string]any{
		"total_items":    float64(12),
		"total_pages":    float64(2),
		"current_page":   float64(2),
		"items_per_page": float64(10),
	}, doc["pagination"])
}

func TestPageDocumentEmptyCollections(t *testing.T) {
	doc := NewPageDocument(views.Page{Kind: domain.KindEmployees, Noun: "employees", Page: 1})
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"items":[]`)
	assert.Contains(t, string(out), `"page_numbers":[]`)
}

func TestFormatKinds(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	kinds := []app.KindInfo{
		{Kind: domain.KindEmployees, Noun: "employees", Count: 25, FetchedAt: now.Add(-2 * time.Hour)},
		{Kind: domain.KindDepartments, Noun: "departments"},
	}
	var buf bytes.Buffer
	require.NoError(t, FormatKinds(kinds, now, &buf))

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "2 hours ago")
	assert.Regexp(t, `departments\s+0\s+never`, out)
}
