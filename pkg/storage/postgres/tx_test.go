package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
	"github.com/mserjo/bossy/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, pg, "txuser")

	// Success callback: the stored notification survives the commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreNotifications(ctx, domain.Notification{
			UserID: user.ID,
			Type:   domain.NotificationAnnouncement,
			Title:  "committed",
		})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	count, err := pg.UnreadNotificationCount(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// Error in callback: everything stored inside the tx is discarded
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreNotifications(ctx, domain.Notification{
			UserID: user.ID,
			Type:   domain.NotificationAnnouncement,
			Title:  "rolled back",
		})
		require.NoError(t, e)

		return errors.New("boom")
	})
	require.Error(t, err)

	count, err = pg.UnreadNotificationCount(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
