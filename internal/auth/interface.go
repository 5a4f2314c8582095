package auth

import (
	"context"

	"github.com/mserjo/bossy/pkg/domain"
)

// TokenPair is the result of a successful authentication: a short-lived JWT
// access token and an opaque refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Auth interface {
	// Register creates a new user account with the given credentials.
	Register(ctx context.Context, email, displayName, password string) (*domain.User, error)
	// Login verifies the credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh exchanges a valid refresh token for a new pair and revokes the
	// old one (rotation).
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
	// ChangePassword verifies the current password, replaces the hash and
	// revokes all refresh tokens of the user.
	ChangePassword(ctx context.Context, userID domain.UserID, current, next string) error
	// VerifyAccessToken validates a JWT access token and returns the
	// authenticated user.
	VerifyAccessToken(ctx context.Context, token string) (*domain.User, error)
	// User fetches the profile of an authenticated user.
	User(ctx context.Context, userID domain.UserID) (*domain.User, error)
	// UpdateProfile changes mutable profile fields of the user.
	UpdateProfile(ctx context.Context, userID domain.UserID, displayName string) (*domain.User, error)
}
