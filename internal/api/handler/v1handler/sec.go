package v1handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
)

type contextKey int

// userContextKey stores the authenticated *domain.User in the request context.
const userContextKey contextKey = iota

// withAuth authenticates the request from its Bearer access token and puts
// the user into the request context.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		user, err := h.deps.Auth.VerifyAccessToken(r.Context(), token)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	})
}

// currentUser returns the authenticated user stored by withAuth.
func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)

	return user
}
