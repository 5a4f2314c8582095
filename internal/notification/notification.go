package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/metrics"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// notifier is the concrete implementation of the Notifier interface.
type notifier struct {
	storage storage.Storage
}

// NotifyTx stores the notifications and enqueues one delivery job per row
// using the caller's transaction handle.
func (n notifier) NotifyTx(ctx context.Context, tx storage.AllStorage, notifications ...domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	stored, err := tx.StoreNotifications(ctx, notifications...)
	if err != nil {
		return fmt.Errorf("could not store notifications: %w", err)
	}

	for _, row := range stored {
		if _, err := tx.AddJob(ctx, DeliveryJobArgs{
			NotificationID: uuid.UUID(row.ID),
		}, nil); err != nil {
			return fmt.Errorf("could not add delivery job: %w", err)
		}

		metrics.NotificationsCreated.WithLabelValues(string(row.Type)).Inc()
	}

	return nil
}

// Notify is NotifyTx in its own transaction.
func (n notifier) Notify(ctx context.Context, notifications ...domain.Notification) error {
	if err := n.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		return n.NotifyTx(ctx, tx, notifications...)
	}); err != nil {
		return fmt.Errorf("could not notify: %w", err)
	}

	return nil
}

// UserNotifications returns a page of the user's notifications. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (n notifier) UserNotifications(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	cursor string,
	limit uint) ([]domain.Notification, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := n.storage.NotificationsByUser(ctx, userID, unreadOnly, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user notifications: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Notifications, next, nil
}

func (n notifier) MarkRead(ctx context.Context, userID domain.UserID, ids ...domain.NotificationID) (int64, error) {
	affected, err := n.storage.MarkNotificationsRead(ctx, userID, time.Now(), ids...)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}

	return affected, nil
}

func (n notifier) UnreadCount(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := n.storage.UnreadNotificationCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("could not count unread notifications: %w", err)
	}

	return count, nil
}

// New creates a new Notifier instance backed by the provided storage.
func New(storage storage.Storage) Notifier {
	return &notifier{storage: storage}
}
