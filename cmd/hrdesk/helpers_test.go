package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/storage"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

type staticClient struct {
	records map[domain.Kind][]json.RawMessage
	marked  []string
}

func (c *staticClient) Fetch(_ context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	return c.records[kind], nil
}

func (c *staticClient) MarkNotificationRead(_ context.Context, id string) error {
	c.marked = append(c.marked, id)
	return nil
}

// notificationFixture returns 25 notifications n1..n25 created one day
// apart; even ones are WARNING, odd ones INFO.
func notificationFixture() []json.RawMessage {
	out := make([]json.RawMessage, 25)
	for i := range out {
		n := i + 1
		typ := "INFO"
		if n%2 == 0 {
			typ = "WARNING"
		}
		out[i] = json.RawMessage(fmt.Sprintf(
			`{"id":"n%d","title":"Notice %d","message":"Update %d","type":"%s","isRead":false,"createdAt":"2024-03-%02dT09:00:00Z"}`,
			n, n, n, typ, n))
	}
	return out
}

// newSyncedService returns a service over file storage with notifications
// already synced.
func newSyncedService(t *testing.T) (*app.Service, *staticClient) {
	t.Helper()
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	client := &staticClient{records: map[domain.Kind][]json.RawMessage{
		domain.KindNotifications: notificationFixture(),
	}}
	svc, err := app.NewService(store, client, views.NewRegistry(), app.Options{PageSize: 10})
	require.NoError(t, err)
	_, err = svc.Sync(context.Background(), domain.KindNotifications)
	require.NoError(t, err)
	return svc, client
}

// execute runs c with args and returns what it wrote to its output.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	c.SetContext(context.Background())
	err := c.Execute()
	return out.String(), err
}

// captureConsole redirects colors output for the duration of the test.
func captureConsole(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	restore := colors.SetOutput(&out, &errOut)
	t.Cleanup(restore)
	return &out, &errOut
}
