package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mserjo/bossy/internal/auth"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
	mockstorage "github.com/mserjo/bossy/pkg/storage/mock"
)

const testSecretKey = "test-secret-key"

func newTestAuth(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, auth.Auth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	a := auth.New(st, auth.Options{
		SecretKey:       testSecretKey,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	})

	return ctrl, st, a
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

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestAuth_Register(t *testing.T) {
	_, st, a := newTestAuth(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			require.Equal(t, "alice@example.com", user.Email)
			require.Equal(t, "Alice", user.DisplayName)
			require.Equal(t, domain.SystemRoleUser, user.Role)
			require.Equal(t, domain.UserStateActive, user.State)
			// the stored hash must verify against the plaintext
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
			user.ID = domain.UserID(uuid.New())

			return &user, nil
		},
	)

	user, err := a.Register(context.Background(), "alice@example.com", "Alice", "correct horse")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "alice@example.com", user.Email)
}

func TestAuth_Register_Validation(t *testing.T) {
	_, _, a := newTestAuth(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "not-an-email", "Alice", "correct horse")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = a.Register(ctx, "alice@example.com", "Alice", "short")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = a.Register(ctx, "alice@example.com", "", "correct horse")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAuth_Login(t *testing.T) {
	_, st, a := newTestAuth(t)

	userID := domain.UserID(uuid.New())
	user := domain.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
		State:        domain.UserStateActive,
	}

	st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(&user, nil)
	st.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token domain.RefreshToken) (*domain.RefreshToken, error) {
			require.Equal(t, userID, token.UserID)
			require.NotEmpty(t, token.TokenHash)
			require.True(t, token.ExpiresAt.After(time.Now()))

			return &token, nil
		},
	)

	pair, err := a.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotEmpty(t, pair.RefreshToken)
	require.EqualValues(t, (15 * time.Minute).Seconds(), pair.ExpiresIn)

	// the access token must parse back to the same user
	parsed, err := auth.ParseAccessToken(testSecretKey, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, userID, parsed)
}

func TestAuth_Login_Failures(t *testing.T) {
	_, st, a := newTestAuth(t)
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		_, err := a.Login(ctx, "nobody@example.com", "whatever!")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := domain.User{
			Email:        "alice@example.com",
			PasswordHash: hashPassword(t, "correct horse"),
			State:        domain.UserStateActive,
		}
		st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(&user, nil)

		_, err := a.Login(ctx, "alice@example.com", "wrong horse")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("suspended account", func(t *testing.T) {
		user := domain.User{
			Email:        "alice@example.com",
			PasswordHash: hashPassword(t, "correct horse"),
			State:        domain.UserStateSuspended,
		}
		st.EXPECT().UserByEmail(gomock.Any(), "alice@example.com").Return(&user, nil)

		_, err := a.Login(ctx, "alice@example.com", "correct horse")
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestAuth_Refresh_RotatesToken(t *testing.T) {
	ctrl, st, a := newTestAuth(t)

	userID := domain.UserID(uuid.New())
	secret, hash, err := auth.NewRefreshSecret()
	require.NoError(t, err)

	stored := domain.RefreshToken{
		ID:        domain.RefreshTokenID(uuid.New()),
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	st.EXPECT().RefreshTokenByHash(gomock.Any(), hash).Return(&stored, nil)
	st.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, State: domain.UserStateActive}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// the old token is revoked and a new one stored in the same transaction
		tx.EXPECT().RevokeRefreshToken(gomock.Any(), stored.ID, gomock.Any()).Return(nil)
		tx.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, token domain.RefreshToken) (*domain.RefreshToken, error) {
				require.NotEqual(t, hash, token.TokenHash)

				return &token, nil
			},
		)
	})

	pair, err := a.Refresh(context.Background(), secret)
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotEqual(t, secret, pair.RefreshToken)
}

func TestAuth_Refresh_Invalid(t *testing.T) {
	_, st, a := newTestAuth(t)
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := a.Refresh(ctx, "bogus")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		stored := domain.RefreshToken{
			UserID:    domain.UserID(uuid.New()),
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(&stored, nil)

		_, err := a.Refresh(ctx, "expired")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("revoked token", func(t *testing.T) {
		stored := domain.RefreshToken{
			UserID:    domain.UserID(uuid.New()),
			ExpiresAt: time.Now().Add(time.Hour),
			RevokedAt: time.Now().Add(-time.Minute),
		}
		st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(&stored, nil)

		_, err := a.Refresh(ctx, "revoked")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("user no longer active", func(t *testing.T) {
		userID := domain.UserID(uuid.New())
		stored := domain.RefreshToken{
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(&stored, nil)
		st.EXPECT().UserByID(gomock.Any(), userID).Return(&domain.User{ID: userID, State: domain.UserStateBanned}, nil)

		_, err := a.Refresh(ctx, "banned")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestAuth_Logout(t *testing.T) {
	_, st, a := newTestAuth(t)
	ctx := context.Background()

	t.Run("revokes a known token", func(t *testing.T) {
		stored := domain.RefreshToken{ID: domain.RefreshTokenID(uuid.New())}
		st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(&stored, nil)
		st.EXPECT().RevokeRefreshToken(gomock.Any(), stored.ID, gomock.Any()).Return(nil)

		require.NoError(t, a.Logout(ctx, "known"))
	})

	t.Run("unknown token is a no-op", func(t *testing.T) {
		st.EXPECT().RefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

		require.NoError(t, a.Logout(ctx, "unknown"))
	})
}

func TestAuth_ChangePassword(t *testing.T) {
	ctrl, st, a := newTestAuth(t)

	userID := domain.UserID(uuid.New())
	user := domain.User{
		ID:           userID,
		PasswordHash: hashPassword(t, "old password"),
		State:        domain.UserStateActive,
	}

	st.EXPECT().UserByID(gomock.Any(), userID).Return(&user, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateUserByID(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
				require.NotNil(t, updates.PasswordHash)
				require.NoError(t,
					bcrypt.CompareHashAndPassword([]byte(*updates.PasswordHash), []byte("new password")))

				return &user, nil
			},
		)
		// every session is invalidated
		tx.EXPECT().RevokeUserRefreshTokens(gomock.Any(), userID, gomock.Any()).Return(int64(2), nil)
	})

	require.NoError(t, a.ChangePassword(context.Background(), userID, "old password", "new password"))
}

func TestAuth_ChangePassword_Failures(t *testing.T) {
	_, st, a := newTestAuth(t)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("too short", func(t *testing.T) {
		err := a.ChangePassword(ctx, userID, "old password", "short")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("wrong current password", func(t *testing.T) {
		user := domain.User{ID: userID, PasswordHash: hashPassword(t, "old password")}
		st.EXPECT().UserByID(gomock.Any(), userID).Return(&user, nil)

		err := a.ChangePassword(ctx, userID, "not the password", "new password")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, nil)

		err := a.ChangePassword(ctx, userID, "old password", "new password")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestAuth_VerifyAccessToken(t *testing.T) {
	_, st, a := newTestAuth(t)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	token, err := auth.SignAccessToken(testSecretKey, userID, time.Minute)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), userID).
			Return(&domain.User{ID: userID, State: domain.UserStateActive}, nil)

		user, err := a.VerifyAccessToken(ctx, token)
		require.NoError(t, err)
		require.Equal(t, userID, user.ID)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		forged, err := auth.SignAccessToken("other-key", userID, time.Minute)
		require.NoError(t, err)

		_, err = a.VerifyAccessToken(ctx, forged)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := auth.SignAccessToken(testSecretKey, userID, -time.Minute)
		require.NoError(t, err)

		_, err = a.VerifyAccessToken(ctx, expired)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("banned user", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), userID).
			Return(&domain.User{ID: userID, State: domain.UserStateBanned}, nil)

		_, err := a.VerifyAccessToken(ctx, token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestAuth_UpdateProfile(t *testing.T) {
	_, st, a := newTestAuth(t)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	st.EXPECT().UpdateUserByID(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
			require.NotNil(t, updates.DisplayName)
			require.Equal(t, "New Name", *updates.DisplayName)

			return &domain.User{ID: userID, DisplayName: *updates.DisplayName}, nil
		},
	)

	user, err := a.UpdateProfile(ctx, userID, "New Name")
	require.NoError(t, err)
	require.Equal(t, "New Name", user.DisplayName)

	t.Run("empty name", func(t *testing.T) {
		_, err := a.UpdateProfile(ctx, userID, "")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		st.EXPECT().UpdateUserByID(gomock.Any(), userID, gomock.Any()).Return(nil, nil)

		_, err := a.UpdateProfile(ctx, userID, "New Name")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestRefreshSecret_HashRoundTrip(t *testing.T) {
	secret, hash, err := auth.NewRefreshSecret()
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	require.Equal(t, auth.HashRefreshSecret(secret), hash)

	// secrets are unique
	other, _, err := auth.NewRefreshSecret()
	require.NoError(t, err)
	require.NotEqual(t, secret, other)
}
