package storage

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
)

// UserNotifications groups a page of notifications together with an optional
// NextCursor used for pagination.
type UserNotifications struct {
	Notifications []domain.Notification
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// NotificationStorage defines persistence operations for in-app
// notifications.
type NotificationStorage interface {
	// StoreNotifications inserts one or more notifications and returns the
	// stored rows.
	StoreNotifications(ctx context.Context, notifications ...domain.Notification) ([]domain.Notification, error)
	// NotificationByID fetches a notification by ID. Returns nil when not
	// found.
	NotificationByID(ctx context.Context, ID domain.NotificationID) (*domain.Notification, error)
	// NotificationsByUser returns a page of the user's notifications created
	// before the optional cursor time, newest first. When unreadOnly is set,
	// read notifications are excluded.
	NotificationsByUser(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		cursor time.Time,
		limit uint) (UserNotifications, error)
	// MarkNotificationsRead stamps the given notifications of a user as read
	// and returns the number of rows affected. Already-read rows are left
	// untouched.
	MarkNotificationsRead(ctx context.Context, userID domain.UserID, at time.Time, IDs ...domain.NotificationID) (int64, error)
	// UnreadNotificationCount returns the number of unread notifications of a
	// user.
	UnreadNotificationCount(ctx context.Context, userID domain.UserID) (int64, error)
}
