package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
)

type markReadFunc func(ctx context.Context, id string) error

func (f markReadFunc) MarkRead(ctx context.Context, id string) error { return f(ctx, id) }

func TestMarkReadSuccess(t *testing.T) {
	out, _ := captureConsole(t)
	var capturedID string
	c := NewMarkReadCmd(func() (markReadClient, error) {
		return markReadFunc(func(_ context.Context, id string) error {
			capturedID = id
			return nil
		}), nil
	})

	_, err := execute(t, c, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", capturedID)
	assert.Contains(t, out.String(), "Notification 42 marked as read")
}

func TestMarkReadError(t *testing.T) {
	expectedErr := errors.New("notification not found")
	c := NewMarkReadCmd(func() (markReadClient, error) {
		return markReadFunc(func(context.Context, string) error { return expectedErr }), nil
	})

	_, err := execute(t, c, "99")
	require.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), "mark-read:")
}

func TestMarkReadRequiresID(t *testing.T) {
	c := NewMarkReadCmd(func() (markReadClient, error) { return markReadFunc(nil), nil })
	_, err := execute(t, c)
	assert.Error(t, err)
}

func TestMarkReadUpdatesSnapshot(t *testing.T) {
	captureConsole(t)
	svc, client := newSyncedService(t)
	c := NewMarkReadCmd(func() (markReadClient, error) { return svc, nil })

	_, err := execute(t, c, "n3")
	require.NoError(t, err)
	assert.Equal(t, []string{"n3"}, client.marked)

	state := query.NewState(query.SortSpec{Field: "id"}).WithFilter("read", "true")
	page, err := svc.List(domain.KindNotifications, state, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.FilteredCount)
}
