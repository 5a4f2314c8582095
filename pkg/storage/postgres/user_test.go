package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        "alice@test.local",
		DisplayName:  "Alice",
		PasswordHash: "hash",
		Role:         domain.SystemRoleUser,
		State:        domain.UserStateActive,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "alice@test.local", stored.Email)
	require.False(t, stored.CreatedAt.IsZero())

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			Email:        "alice@test.local",
			DisplayName:  "Impostor",
			PasswordHash: "hash",
			Role:         domain.SystemRoleUser,
			State:        domain.UserStateActive,
		})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("lookup by email", func(t *testing.T) {
		got, err := pgSQL.UserByEmail(ctx, "alice@test.local")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, stored.ID, got.ID)

		missing, err := pgSQL.UserByEmail(ctx, "nobody@test.local")
		require.NoError(t, err)
		require.Nil(t, missing)
	})
}

func TestPgSQL_UpdateUserByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := createTestUser(t, pgSQL, "bob")

	name := "Robert"
	hash := "newhash"
	updated, err := pgSQL.UpdateUserByID(ctx, user.ID, storage.UserUpdates{
		DisplayName:  &name,
		PasswordHash: &hash,
		State:        domain.UserStateSuspended,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Robert", updated.DisplayName)
	require.Equal(t, "newhash", updated.PasswordHash)
	require.Equal(t, domain.UserStateSuspended, updated.State)
	require.False(t, updated.UpdatedAt.IsZero())

	t.Run("soft delete hides the user", func(t *testing.T) {
		deleted, err := pgSQL.DeleteUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)

		got, err := pgSQL.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		// deleting again is a no-op
		again, err := pgSQL.DeleteUser(ctx, user.ID)
		require.NoError(t, err)
		require.Nil(t, again)
	})
}

func TestPgSQL_RefreshTokens(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := createTestUser(t, pgSQL, "carol")

	token, err := pgSQL.StoreRefreshToken(ctx, domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: "hash-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, token)

	got, err := pgSQL.RefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, token.ID, got.ID)
	require.True(t, got.Valid(time.Now()))

	t.Run("revoke single token", func(t *testing.T) {
		require.NoError(t, pgSQL.RevokeRefreshToken(ctx, token.ID, time.Now()))

		got, err := pgSQL.RefreshTokenByHash(ctx, "hash-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.False(t, got.Valid(time.Now()))
	})

	t.Run("revoke all user tokens", func(t *testing.T) {
		for _, hash := range []string{"hash-2", "hash-3"} {
			_, err := pgSQL.StoreRefreshToken(ctx, domain.RefreshToken{
				UserID:    user.ID,
				TokenHash: hash,
				ExpiresAt: time.Now().Add(time.Hour),
			})
			require.NoError(t, err)
		}

		affected, err := pgSQL.RevokeUserRefreshTokens(ctx, user.ID, time.Now())
		require.NoError(t, err)
		require.EqualValues(t, 2, affected)
	})
}
