package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/logging"
)

// MarkRead marks a notification as read on the backend, then patches the
// local snapshot so the change shows without a sync. A notification that is
// not in the snapshot is not an error.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if s.client == nil {
		return fmt.Errorf("mark-read: no API client configured")
	}
	if err := s.client.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("mark-read: %w", err)
	}
	err := s.store.PatchRecord(domain.KindNotifications, id, map[string]any{"isRead": true})
	if errors.Is(err, domain.ErrRecordNotFound) {
		logging.Debug("notification not in snapshot", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark-read: update snapshot: %w", err)
	}
	return nil
}
