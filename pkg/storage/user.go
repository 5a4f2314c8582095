package storage

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
)

// UserUpdates describes a set of optional fields that can be applied to an
// existing user during an update. Only non-nil fields will be updated.
type UserUpdates struct {
	// DisplayName, when provided, replaces the user's display name.
	DisplayName *string
	// PasswordHash, when provided, replaces the stored password hash.
	PasswordHash *string
	// State is the new account state to set; empty means unchanged.
	State domain.UserState
	// Role is the new system role to set; empty means unchanged.
	Role domain.SystemRole
}

// UserStorage defines persistence operations for user accounts and their
// refresh tokens. Soft-deleted users are excluded from all lookups.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row including generated
	// fields. Returns serrors.ErrConflict when the email is already taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUserByID applies the provided field set to a single user and
	// returns the updated row, or nil when the user does not exist.
	UpdateUserByID(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
	// DeleteUser performs a soft delete and returns the deleted user, or nil
	// if it was not found.
	DeleteUser(ctx context.Context, ID domain.UserID) (*domain.User, error)

	// StoreRefreshToken persists a refresh token record.
	StoreRefreshToken(ctx context.Context, token domain.RefreshToken) (*domain.RefreshToken, error)
	// RefreshTokenByHash fetches a refresh token by its secret hash. Returns
	// nil when not found.
	RefreshTokenByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	// RevokeRefreshToken marks a single token revoked at the given time.
	RevokeRefreshToken(ctx context.Context, ID domain.RefreshTokenID, at time.Time) error
	// RevokeUserRefreshTokens revokes all active tokens of a user and returns
	// the number of tokens affected. Used on logout-everywhere and password
	// change.
	RevokeUserRefreshTokens(ctx context.Context, userID domain.UserID, at time.Time) (int64, error)
}
