package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/pkg/domain"
)

func TestPgSQL_Notifications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := createTestUser(t, pgSQL, "reader")
	other := createTestUser(t, pgSQL, "other")

	stored, err := pgSQL.StoreNotifications(ctx,
		domain.Notification{UserID: user.ID, Type: domain.NotificationTaskAssigned, Title: "one"},
		domain.Notification{UserID: user.ID, Type: domain.NotificationBonusAwarded, Title: "two"},
		domain.Notification{UserID: other.ID, Type: domain.NotificationTaskAssigned, Title: "not yours"},
	)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	t.Run("fetch by id", func(t *testing.T) {
		got, err := pgSQL.NotificationByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "one", got.Title)

		missing, err := pgSQL.NotificationByID(ctx, domain.NotificationID{})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("listing is scoped to the user", func(t *testing.T) {
		page, err := pgSQL.NotificationsByUser(ctx, user.ID, false, time.Time{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Notifications, 2)
	})

	t.Run("unread count and mark read", func(t *testing.T) {
		count, err := pgSQL.UnreadNotificationCount(ctx, user.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, count)

		// marking another user's notification is a no-op
		marked, err := pgSQL.MarkNotificationsRead(ctx, user.ID, time.Now(), stored[2].ID)
		require.NoError(t, err)
		require.Zero(t, marked)

		marked, err = pgSQL.MarkNotificationsRead(ctx, user.ID, time.Now(), stored[0].ID, stored[1].ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, marked)

		// already-read rows are left untouched
		marked, err = pgSQL.MarkNotificationsRead(ctx, user.ID, time.Now(), stored[0].ID)
		require.NoError(t, err)
		require.Zero(t, marked)

		unread, err := pgSQL.NotificationsByUser(ctx, user.ID, true, time.Time{}, 10)
		require.NoError(t, err)
		require.Empty(t, unread.Notifications)
	})
}
