package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

func (s srv) CreateNotification(ctx context.Context, p service.CreateNotificationParams) (*entities.Notification, error) {
	if p.UserID == "" || !p.Type.IsValid() {
		return nil, fmt.Errorf("%w: user_id and a valid type are required", service.ErrInvalidRequest)
	}

	n, err := s.s.CreateNotification(ctx, &storage.CreateNotificationParams{
		ID:        uuid.New().String(),
		UserID:    p.UserID,
		ActorID:   p.ActorID,
		Type:      p.Type,
		PostID:    p.PostID,
		Message:   p.Message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification on storage side: %w", err)
	}

	return n, nil
}

// BroadcastSystemNotification inserts one system notification per recipient.
// The batch is not atomic: a failure mid-way leaves the notifications already
// inserted in place. It returns the count inserted and the first error.
func (s srv) BroadcastSystemNotification(ctx context.Context, userIDs []string, message string) (int, error) {
	if len(userIDs) == 0 || message == "" {
		return 0, fmt.Errorf("%w: user_ids and message are required", service.ErrInvalidRequest)
	}

	now := time.Now()

	for i, id := range userIDs {
		if _, err := s.s.CreateNotification(ctx, &storage.CreateNotificationParams{
			ID:        uuid.New().String(),
			UserID:    id,
			Type:      entities.SystemNotification,
			Message:   message,
			CreatedAt: now,
		}); err != nil {
			return i, fmt.Errorf("failed to notify user %s: %w", id, err)
		}
	}

	return len(userIDs), nil
}

func (s srv) GetUserNotifications(ctx context.Context, userID string, p service.ListParams) ([]*entities.Notification, error) {
	nn, err := s.s.ListNotifications(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications from storage: %w", err)
	}

	return nn, nil
}

func (s srv) GetUnreadNotificationCount(ctx context.Context, userID string) (uint64, error) {
	c, err := s.s.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications on storage side: %w", err)
	}

	return c, nil
}

func (s srv) MarkNotificationRead(ctx context.Context, id string) error {
	if err := s.s.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read on storage side: %w", err)
	}

	return nil
}

func (s srv) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if err := s.s.MarkAllNotificationsRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read on storage side: %w", err)
	}

	return nil
}
