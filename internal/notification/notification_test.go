package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
	mockstorage "github.com/mserjo/bossy/pkg/storage/mock"
)

func newTestNotifier(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, notification.Notifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, notification.New(st)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestNotifier_NotifyTx_EnqueuesOneJobPerRow(t *testing.T) {
	ctrl, _, n := newTestNotifier(t)

	tx := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())
	first := domain.NotificationID(uuid.New())
	second := domain.NotificationID(uuid.New())

	tx.EXPECT().StoreNotifications(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, notifications ...domain.Notification) ([]domain.Notification, error) {
			require.Len(t, notifications, 2)
			notifications[0].ID = first
			notifications[1].ID = second

			return notifications, nil
		},
	)

	var enqueued []uuid.UUID
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			delivery, ok := args.(notification.DeliveryJobArgs)
			require.True(t, ok)
			enqueued = append(enqueued, delivery.NotificationID)

			return true, nil
		},
	).Times(2)

	err := n.NotifyTx(context.Background(), tx,
		domain.Notification{UserID: userID, Type: domain.NotificationTaskAssigned, Title: "a"},
		domain.Notification{UserID: userID, Type: domain.NotificationBonusAwarded, Title: "b"},
	)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{uuid.UUID(first), uuid.UUID(second)}, enqueued)
}

func TestNotifier_NotifyTx_EmptyIsNoop(t *testing.T) {
	ctrl, _, n := newTestNotifier(t)

	tx := mockstorage.NewMockAllStorage(ctrl)

	require.NoError(t, n.NotifyTx(context.Background(), tx))
}

func TestNotifier_Notify_RunsInOwnTransaction(t *testing.T) {
	ctrl, st, n := newTestNotifier(t)

	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, notifications ...domain.Notification) ([]domain.Notification, error) {
				notifications[0].ID = domain.NotificationID(uuid.New())

				return notifications, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(true, nil)
	})

	err := n.Notify(context.Background(), domain.Notification{
		UserID: userID,
		Type:   domain.NotificationTaskReminder,
		Title:  "Due soon",
	})
	require.NoError(t, err)
}

func TestNotifier_UserNotifications(t *testing.T) {
	userID := domain.UserID(uuid.New())

	t.Run("pages with a cursor", func(t *testing.T) {
		_, st, n := newTestNotifier(t)

		cursor := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
		next := cursor.Add(-time.Hour)

		st.EXPECT().
			NotificationsByUser(gomock.Any(), userID, true, cursor, uint(25)).
			Return(storage.UserNotifications{
				Notifications: []domain.Notification{{ID: domain.NotificationID(uuid.New())}},
				NextCursor:    &next,
			}, nil)

		page, nextCursor, err := n.UserNotifications(context.Background(), userID, true, cursor.Format(time.RFC3339), 25)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, next.Format(time.RFC3339), nextCursor)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		_, _, n := newTestNotifier(t)

		_, _, err := n.UserNotifications(context.Background(), userID, false, "tomorrow", 25)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestNotifier_MarkRead(t *testing.T) {
	_, st, n := newTestNotifier(t)

	userID := domain.UserID(uuid.New())
	ids := []domain.NotificationID{
		domain.NotificationID(uuid.New()),
		domain.NotificationID(uuid.New()),
	}

	st.EXPECT().
		MarkNotificationsRead(gomock.Any(), userID, gomock.Any(), ids[0], ids[1]).
		Return(int64(2), nil)

	affected, err := n.MarkRead(context.Background(), userID, ids...)
	require.NoError(t, err)
	require.EqualValues(t, 2, affected)
}

func TestNotifier_UnreadCount(t *testing.T) {
	_, st, n := newTestNotifier(t)

	userID := domain.UserID(uuid.New())

	st.EXPECT().UnreadNotificationCount(gomock.Any(), userID).Return(int64(7), nil)

	count, err := n.UnreadCount(context.Background(), userID)
	require.NoError(t, err)
	require.EqualValues(t, 7, count)
}
