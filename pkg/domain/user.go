package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// RefreshTokenID uniquely identifies a stored refresh token.
type RefreshTokenID uuid.UUID

// UserState represents the lifecycle state of a user account.
type UserState string

const (
	// UserStateActive indicates the account is active and usable.
	UserStateActive UserState = "ACTIVE"
	// UserStateSuspended indicates the account was temporarily suspended by an administrator.
	UserStateSuspended UserState = "SUSPENDED"
	// UserStateBanned indicates the account was permanently blocked.
	UserStateBanned UserState = "BANNED"
)

// SystemRole is the system-wide role of a user, independent of any group role.
type SystemRole string

const (
	// SystemRoleSuperuser has full access to the whole system.
	SystemRoleSuperuser SystemRole = "SUPERUSER"
	// SystemRoleUser is a regular user.
	SystemRoleUser SystemRole = "USER"
)

// User represents a registered account.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`
	// DisplayName is the human-readable name shown to other group members.
	DisplayName string `json:"displayName"`
	// PasswordHash is the bcrypt hash of the user's password. Never serialized.
	PasswordHash string `json:"-"`

	// Role is the system-wide role of the account.
	Role SystemRole `json:"role"`
	// State is the current lifecycle state of the account.
	State UserState `json:"state"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the account was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// CanLogin reports whether the account is allowed to authenticate.
func (u User) CanLogin() bool {
	return u.State == UserStateActive && u.DeletedAt.IsZero()
}

// RefreshToken is the stored server-side half of a refresh token pair. Only a
// SHA-256 hash of the opaque client secret is persisted, so a database leak
// does not expose usable tokens.
type RefreshToken struct {
	ID     RefreshTokenID `json:"id"`
	UserID UserID         `json:"userId"`

	// TokenHash is the hex-encoded SHA-256 hash of the client secret.
	TokenHash string `json:"-"`

	ExpiresAt time.Time `json:"expiresAt"`
	// RevokedAt marks when the token was revoked; zero value means still valid.
	RevokedAt time.Time `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Valid reports whether the token can still be exchanged at the given time.
func (t RefreshToken) Valid(now time.Time) bool {
	return t.RevokedAt.IsZero() && now.Before(t.ExpiresAt)
}
