package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/apiclient"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/storage"
	"github.com/cristianoliveira/hrdesk/internal/storage/sqlite"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

type mockClient struct {
	mock.Mock
	// onFetch runs inside Fetch before it returns.
	onFetch func(kind domain.Kind)
}

func (m *mockClient) Fetch(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	args := m.Called(ctx, kind)
	if m.onFetch != nil {
		m.onFetch(kind)
	}
	raw, _ := args.Get(0).([]json.RawMessage)
	return raw, args.Error(1)
}

func (m *mockClient) MarkNotificationRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func notifications(n int) []json.RawMessage {
	out := make([]json.RawMessage, n)
	for i := range out {
		out[i] = json.RawMessage(fmt.Sprintf(
			`{"id":"n%d","title":"Notice %d","message":"Leave update for Maria %d","type":"INFO","isRead":false,"createdAt":"2024-03-%02dT09:00:00Z"}`,
			i+1, i+1, i+1, i+1))
	}
	return out
}

func newService(t *testing.T, client Client) (*Service, storage.Storage) {
	t.Helper()
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	svc, err := NewService(store, client, views.NewRegistry(), Options{PageSize: 10})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestNewServiceRejectsUnknownSearchMode(t *testing.T) {
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	_, err = NewService(store, nil, nil, Options{SearchMode: "soundex"})
	assert.Error(t, err)
}

func TestSyncSavesSnapshot(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(12), nil).Once()
	svc, store := newService(t, client)

	results, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 12, results[0].Count)
	assert.False(t, results[0].Stale)

	snap, err := store.LoadSnapshot(domain.KindNotifications)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 12)
	assert.Equal(t, svc.now().UTC(), snap.FetchedAt.UTC())
	client.AssertExpectations(t)
}

func TestSyncFailureKeepsPreviousSnapshot(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(3), nil).Once()
	apiErr := &apiclient.APIError{StatusCode: 503, Message: "unavailable"}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(nil, apiErr).Once()
	svc, store := newService(t, client)
	var warnings []string
	svc.OnWarning(func(msg string) { warnings = append(warnings, msg) })

	_, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	results, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.Error(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "keeping previous snapshot")
	var target *apiclient.APIError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, apiErr, results[0].Err)

	snap, err := store.LoadSnapshot(domain.KindNotifications)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 3)
}

func TestSyncDiscardsStaleResponse(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(5), nil).Once()
	svc, store := newService(t, client)
	// A newer sync starts while the first request is in flight.
	client.onFetch = func(kind domain.Kind) { svc.generation(kind).Next() }

	results, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)
	assert.True(t, results[0].Stale)

	snap, err := store.LoadSnapshot(domain.KindNotifications)
	require.NoError(t, err)
	assert.True(t, snap.Empty())
}

func TestSyncNewerSaveWinsOverOlderInFlight(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(3), nil).Once()
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(7), nil).Once()
	svc, store := newService(t, client)

	// The clock is read after the stale check and before saving: a newer sync
	// of the same kind runs to completion right there.
	var newer []SyncResult
	fixed := svc.now()
	calls := 0
	svc.now = func() time.Time {
		calls++
		if calls == 1 {
			var err error
			newer, err = svc.Sync(context.Background(), domain.KindNotifications)
			require.NoError(t, err)
		}
		return fixed
	}

	older, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)
	assert.True(t, older[0].Stale)
	require.Len(t, newer, 1)
	assert.Equal(t, 7, newer[0].Count)

	snap, err := store.LoadSnapshot(domain.KindNotifications)
	require.NoError(t, err)
	assert.Len(t, snap.Records, 7)
}

func TestSyncCollapsesDuplicateIDs(t *testing.T) {
	raw := notifications(3)
	raw = append(raw, json.RawMessage(`{"id":"n1","title":"Notice 1 (edited)","type":"INFO","isRead":true,"createdAt":"2024-03-01T09:00:00Z"}`))
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(raw, nil).Once()
	svc, store := newService(t, client)

	results, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)
	assert.Equal(t, 3, results[0].Count)

	snap, err := store.LoadSnapshot(domain.KindNotifications)
	require.NoError(t, err)
	require.Len(t, snap.Records, 3)
	assert.Contains(t, string(snap.Records[0]), "(edited)")
}

func TestSyncRejectsRecordWithoutID(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindDepartments).
		Return([]json.RawMessage{json.RawMessage(`{"name":"Engineering"}`)}, nil).Once()
	svc, _ := newService(t, client)

	results, err := svc.Sync(context.Background(), domain.KindDepartments)
	require.Error(t, err)
	assert.Contains(t, results[0].Err.Error(), "no id")
}

func TestSyncAllKinds(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, mock.Anything).Return([]json.RawMessage{}, nil)
	svc, _ := newService(t, client)

	results, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, len(domain.AllKinds))
	client.AssertNumberOfCalls(t, "Fetch", len(domain.AllKinds))
}

func TestSyncAllKindsOnSQLite(t *testing.T) {
	store, err := storage.NewForBackend(storage.BackendSQLite, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	_, isSQLite := store.(*sqlite.SQLiteStorage)
	require.True(t, isSQLite, "sqlite backend opened")

	raw := make([]json.RawMessage, 1000)
	for i := range raw {
		raw[i] = json.RawMessage(fmt.Sprintf(`{"id":"r%d"}`, i))
	}
	client := &mockClient{}
	client.On("Fetch", mock.Anything, mock.Anything).Return(raw, nil)
	svc, err := NewService(store, client, views.NewRegistry(), Options{})
	require.NoError(t, err)

	for round := 0; round < 3; round++ {
		results, err := svc.Sync(context.Background())
		require.NoError(t, err)
		for _, r := range results {
			assert.NoError(t, r.Err, r.Kind.String())
			assert.Equal(t, 1000, r.Count, r.Kind.String())
		}
	}

	infos, err := store.ListKinds()
	require.NoError(t, err)
	assert.Len(t, infos, len(domain.AllKinds))
}

func TestSyncUnknownKind(t *testing.T) {
	svc, _ := newService(t, &mockClient{})
	_, err := svc.Sync(context.Background(), domain.Kind("payroll"))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestListFromSnapshot(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(25), nil).Once()
	svc, _ := newService(t, client)
	_, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)

	state, err := svc.DefaultState(domain.KindNotifications)
	require.NoError(t, err)

	page, err := svc.List(domain.KindNotifications, state.WithPage(3), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Rows, 5)
	assert.Equal(t, "25 notifications", page.Summary())
	// createdAt descending: page 3 holds the oldest five
	assert.Equal(t, "n5", page.Rows[0][0])

	page, err = svc.List(domain.KindNotifications, state.WithSearch("maria 1"), 5)
	require.NoError(t, err)
	assert.Equal(t, 11, page.FilteredCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, "11 of 25 notifications (filtered)", page.Summary())
}

func TestListNeverSyncedIsEmpty(t *testing.T) {
	svc, _ := newService(t, &mockClient{})
	state, err := svc.DefaultState(domain.KindEmployees)
	require.NoError(t, err)

	page, err := svc.List(domain.KindEmployees, state, 0)
	require.NoError(t, err)
	assert.True(t, page.Empty())
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, "0 employees", page.Summary())
}

func TestListUnknownSortField(t *testing.T) {
	svc, _ := newService(t, &mockClient{})
	state := query.NewState(query.SortSpec{Field: "shoeSize", Order: query.OrderAsc})
	_, err := svc.List(domain.KindEmployees, state, 0)
	assert.Error(t, err)
}

func TestMarkReadPatchesSnapshot(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(2), nil).Once()
	client.On("MarkNotificationRead", mock.Anything, "n2").Return(nil).Once()
	client.On("MarkNotificationRead", mock.Anything, "n9").Return(nil).Once()
	svc, _ := newService(t, client)
	_, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(context.Background(), "n2"))
	require.NoError(t, svc.MarkRead(context.Background(), "n9"))

	state, err := svc.DefaultState(domain.KindNotifications)
	require.NoError(t, err)
	page, err := svc.List(domain.KindNotifications, state.WithFilter("read", "true"), 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "n2", page.Items[0].(domain.Notification).ID)
	client.AssertExpectations(t)
}

func TestMarkReadAPIFailureLeavesSnapshot(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindNotifications).Return(notifications(1), nil).Once()
	client.On("MarkNotificationRead", mock.Anything, "n1").Return(&apiclient.APIError{StatusCode: 500, Message: "boom"}).Once()
	svc, _ := newService(t, client)
	_, err := svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)

	require.Error(t, svc.MarkRead(context.Background(), "n1"))

	state, _ := svc.DefaultState(domain.KindNotifications)
	page, err := svc.List(domain.KindNotifications, state.WithFilter("read", "false"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.FilteredCount)
}

func TestKinds(t *testing.T) {
	client := &mockClient{}
	client.On("Fetch", mock.Anything, domain.KindEmployees).Return([]json.RawMessage{
		json.RawMessage(`{"id":"e1","firstName":"Maria","lastName":"Silva"}`),
	}, nil).Once()
	svc, _ := newService(t, client)
	_, err := svc.Sync(context.Background(), domain.KindEmployees)
	require.NoError(t, err)

	kinds, err := svc.Kinds()
	require.NoError(t, err)
	require.Len(t, kinds, len(domain.AllKinds))
	assert.Equal(t, domain.KindEmployees, kinds[0].Kind)
	assert.Equal(t, 1, kinds[0].Count)
	assert.True(t, kinds[0].Synced())
	assert.False(t, kinds[1].Synced())
	assert.Equal(t, "departments", kinds[1].Noun)
}
