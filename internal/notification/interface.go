package notification

import (
	"context"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

//go:generate mockgen -package mocknotification -source=interface.go -destination=mock/mocknotification.go *
type Notifier interface {
	// NotifyTx stores notifications and enqueues their delivery inside the
	// caller's transaction, so a rolled-back operation never notifies anyone.
	NotifyTx(ctx context.Context, tx storage.AllStorage, notifications ...domain.Notification) error
	// Notify is NotifyTx wrapped in its own transaction.
	Notify(ctx context.Context, notifications ...domain.Notification) error
	// UserNotifications returns a page of the user's notifications with an
	// RFC3339 cursor.
	UserNotifications(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		cursor string,
		limit uint) ([]domain.Notification, string, error)
	// MarkRead stamps the given notifications as read and returns how many
	// were affected.
	MarkRead(ctx context.Context, userID domain.UserID, ids ...domain.NotificationID) (int64, error)
	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context, userID domain.UserID) (int64, error)
}
