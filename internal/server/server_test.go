package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/format"
	"github.com/cristianoliveira/hrdesk/internal/storage"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

type staticClient struct {
	records map[domain.Kind][]json.RawMessage
}

func (c staticClient) Fetch(_ context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	return c.records[kind], nil
}

func (c staticClient) MarkNotificationRead(context.Context, string) error { return nil }

// leaveFixture returns 25 leave requests; the first 12 are PENDING and
// requests 1, 2 and 3 belong to Maria.
func leaveFixture() []json.RawMessage {
	out := make([]json.RawMessage, 25)
	for i := range out {
		n := i + 1
		status := "APPROVED"
		if n <= 12 {
			status = "PENDING"
		}
		first := fmt.Sprintf("Worker%d", n)
		if n <= 3 {
			first = "Maria"
		}
		out[i] = json.RawMessage(fmt.Sprintf(
			`{"id":"l%d","employee":{"id":"e%d","firstName":"%s","lastName":"Doe"},"leaveType":"ANNUAL","status":"%s","startDate":"2024-03-%02dT00:00:00Z","endDate":"2024-03-%02dT00:00:00Z","createdAt":"2024-02-%02dT10:00:00Z"}`,
			n, n, first, status, n, n, n))
	}
	return out
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	client := staticClient{records: map[domain.Kind][]json.RawMessage{domain.KindLeaveRequests: leaveFixture()}}
	svc, err := app.NewService(store, client, views.NewRegistry(), app.Options{PageSize: 10})
	require.NoError(t, err)
	_, err = svc.Sync(context.Background(), domain.KindLeaveRequests)
	require.NoError(t, err)

	ts := httptest.NewServer(New(svc).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/health", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListPendingRequests(t *testing.T) {
	ts := newTestServer(t)

	var doc format.PageDocument
	code := getJSON(t, ts.URL+"/api/v1/leave-requests?status=PENDING&page=2", &doc)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "12 of 25 requests (filtered)", doc.Summary)
	assert.Equal(t, 12, doc.FilteredCount)
	assert.Equal(t, 25, doc.TotalCount)
	assert.Equal(t, format.Pagination{TotalItems: 12, TotalPages: 2, CurrentPage: 2, ItemsPerPage: 10}, doc.Pagination)
	assert.Equal(t, []int{1, 2}, doc.PageNumbers)
	assert.Len(t, doc.Items, 2)
}

func TestListSearchSortAndClamp(t *testing.T) {
	ts := newTestServer(t)

	var doc format.PageDocument
	code := getJSON(t, ts.URL+"/api/v1/leave_requests?search=MARIA&sort=startDate&order=desc&page=9", &doc)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, doc.FilteredCount)
	assert.Equal(t, 1, doc.Pagination.CurrentPage)
	require.Len(t, doc.Items, 3)
	first := doc.Items[0].(map[string]any)
	assert.Equal(t, "l3", first["id"])
}

func TestListDateRange(t *testing.T) {
	ts := newTestServer(t)

	var doc format.PageDocument
	code := getJSON(t, ts.URL+"/api/v1/leave-requests?start_from=2024-03-10&start_to=2024-03-14&page_size=2", &doc)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, doc.FilteredCount)
	assert.Equal(t, 3, doc.Pagination.TotalPages)
	assert.Equal(t, 2, doc.Pagination.ItemsPerPage)
}

func TestListErrors(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name string
		path string
		code int
	}{
		{"unknown kind", "/api/v1/payroll", http.StatusNotFound},
		{"unknown sort", "/api/v1/leave-requests?sort=salary", http.StatusBadRequest},
		{"bad order", "/api/v1/leave-requests?order=sideways", http.StatusBadRequest},
		{"bad page", "/api/v1/leave-requests?page=0", http.StatusBadRequest},
		{"bad filter value", "/api/v1/leave-requests?status=LOST", http.StatusBadRequest},
		{"reversed range", "/api/v1/leave-requests?start_from=2024-03-10&start_to=2024-03-01", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			assert.Equal(t, tt.code, getJSON(t, ts.URL+tt.path, &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestListNeverSyncedKind(t *testing.T) {
	ts := newTestServer(t)
	var doc format.PageDocument
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/employees", &doc))
	assert.Equal(t, 0, doc.TotalCount)
	assert.Empty(t, doc.Items)
	assert.Equal(t, 1, doc.Pagination.CurrentPage)
}

func TestKinds(t *testing.T) {
	ts := newTestServer(t)
	var kinds []kindDocument
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/kinds", &kinds))
	require.Len(t, kinds, len(domain.AllKinds))
	assert.Equal(t, "employees", kinds[0].Kind)
	assert.Contains(t, kinds[0].Filters, "status")
}

func TestMetrics(t *testing.T) {
	ts := newTestServer(t)
	var doc format.PageDocument
	getJSON(t, ts.URL+"/api/v1/leave-requests", &doc)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hrdesk_list_queries_total{kind="leave-requests",outcome="ok"} 1`)
	assert.Contains(t, string(body), "hrdesk_list_query_duration_seconds_bucket")
}
