package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
)

// refreshTokenBytes is the entropy of the opaque refresh token secret.
const refreshTokenBytes = 32

// SignAccessToken issues an HS256 JWT for the given user with the configured
// TTL.
func SignAccessToken(secretKey string, userID domain.UserID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.UUID(userID).String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("could not sign access token: %w", err)
	}

	return signed, nil
}

// ParseAccessToken validates a signed access token and returns the user ID it
// was issued for.
func ParseAccessToken(secretKey, raw string) (domain.UserID, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid access token claims")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid access token subject")
	}

	return domain.UserID(id), nil
}

// NewRefreshSecret generates an opaque refresh token secret and the SHA-256
// hash stored server-side. Only the hash is persisted, so a database leak
// does not expose usable tokens.
func NewRefreshSecret() (secret, hash string, err error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("could not generate refresh token: %w", err)
	}

	secret = hex.EncodeToString(buf)

	return secret, HashRefreshSecret(secret), nil
}

// HashRefreshSecret computes the stored hash of a refresh token secret.
func HashRefreshSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))

	return hex.EncodeToString(sum[:])
}
