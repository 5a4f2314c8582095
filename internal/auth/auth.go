package auth

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// Options configure token issuance.
type Options struct {
	// SecretKey is the HMAC key used to sign access tokens.
	SecretKey string
	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration
	// RefreshTokenTTL is the lifetime of issued refresh tokens.
	RefreshTokenTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecretKey:       cfg.Auth.SecretKey,
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

// auth is the concrete implementation of the Auth interface.
type auth struct {
	options Options
	storage storage.Storage
}

// Register creates a new active user account. The password is stored as a
// bcrypt hash.
func (a auth) Register(ctx context.Context, email, displayName, password string) (*domain.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email address")
	}
	if len(password) < minPasswordLength {
		return nil, serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}
	if displayName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "display name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         domain.SystemRoleUser,
		State:        domain.UserStateActive,
	})
	if err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a token pair. Credential failures
// are indistinguishable from unknown emails on purpose.
func (a auth) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	if !user.CanLogin() {
		return nil, serrors.With(serrors.ErrForbidden, "account is not active")
	}

	return a.issuePair(ctx, user.ID)
}

// Refresh rotates a refresh token: the presented token is revoked and a fresh
// pair is issued.
func (a auth) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := a.storage.RefreshTokenByHash(ctx, HashRefreshSecret(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("could not fetch refresh token: %w", err)
	}
	now := time.Now()
	if stored == nil || !stored.Valid(now) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid refresh token")
	}

	user, err := a.storage.UserByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil || !user.CanLogin() {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid refresh token")
	}

	var pair *TokenPair
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.RevokeRefreshToken(ctx, stored.ID, now); err != nil {
			return fmt.Errorf("could not revoke refresh token: %w", err)
		}

		pair, err = a.issuePairTx(ctx, tx, user.ID)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not rotate refresh token: %w", err)
	}

	return pair, nil
}

// Logout revokes the presented refresh token. Unknown tokens are treated as
// already logged out.
func (a auth) Logout(ctx context.Context, refreshToken string) error {
	stored, err := a.storage.RefreshTokenByHash(ctx, HashRefreshSecret(refreshToken))
	if err != nil {
		return fmt.Errorf("could not fetch refresh token: %w", err)
	}
	if stored == nil {
		return nil
	}

	if err := a.storage.RevokeRefreshToken(ctx, stored.ID, time.Now()); err != nil {
		return fmt.Errorf("could not revoke refresh token: %w", err)
	}

	return nil
}

// ChangePassword replaces the password hash and revokes every refresh token
// of the user, forcing re-authentication on all devices.
func (a auth) ChangePassword(ctx context.Context, userID domain.UserID, current, next string) error {
	if len(next) < minPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", minPasswordLength)
	}

	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return serrors.With(serrors.ErrUnauthorized, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		hashStr := string(hash)
		if _, err := tx.UpdateUserByID(ctx, userID, storage.UserUpdates{PasswordHash: &hashStr}); err != nil {
			return fmt.Errorf("could not update password: %w", err)
		}

		if _, err := tx.RevokeUserRefreshTokens(ctx, userID, time.Now()); err != nil {
			return fmt.Errorf("could not revoke refresh tokens: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not change password: %w", err)
	}

	return nil
}

// VerifyAccessToken validates the token signature and expiry, then loads the
// user and checks the account is still usable.
func (a auth) VerifyAccessToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := ParseAccessToken(a.options.SecretKey, token)
	if err != nil {
		return nil, err
	}

	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil || !user.CanLogin() {
		return nil, serrors.With(serrors.ErrUnauthorized, "account is not active")
	}

	return user, nil
}

func (a auth) User(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (a auth) UpdateProfile(ctx context.Context, userID domain.UserID, displayName string) (*domain.User, error) {
	if displayName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "display name is required")
	}

	user, err := a.storage.UpdateUserByID(ctx, userID, storage.UserUpdates{DisplayName: &displayName})
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// issuePair signs an access token and persists a new refresh token.
func (a auth) issuePair(ctx context.Context, userID domain.UserID) (*TokenPair, error) {
	return a.issuePairTx(ctx, a.storage, userID)
}

func (a auth) issuePairTx(ctx context.Context, tx storage.AllStorage, userID domain.UserID) (*TokenPair, error) {
	access, err := SignAccessToken(a.options.SecretKey, userID, a.options.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	secret, hash, err := NewRefreshSecret()
	if err != nil {
		return nil, err
	}

	if _, err := tx.StoreRefreshToken(ctx, domain.RefreshToken{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(a.options.RefreshTokenTTL),
	}); err != nil {
		return nil, fmt.Errorf("could not store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: secret,
		ExpiresIn:    int64(a.options.AccessTokenTTL.Seconds()),
	}, nil
}

// New creates a new Auth instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Auth {
	return &auth{
		options: options,
		storage: storage,
	}
}
