// Package v1handler implements the HTTP handlers of version 1 of the API.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mserjo/bossy/internal/auth"
	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/internal/gamification"
	"github.com/mserjo/bossy/internal/group"
	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/internal/reward"
	"github.com/mserjo/bossy/internal/task"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/serrors"
)

// defaultPageSize is used when the client does not pass a limit.
const defaultPageSize = 20

// maxPageSize caps client-requested page sizes.
const maxPageSize = 100

// Deps carries the services the handlers delegate to.
type Deps struct {
	Auth         auth.Auth
	Groups       group.Groups
	Tasks        task.Tasks
	Bonus        bonus.Bonus
	Rewards      reward.Rewards
	Gamification gamification.Gamification
	Notifier     notification.Notifier
}

// Handler holds the route implementations of the v1 API.
type Handler struct {
	deps Deps
}

// New builds the v1 router. Authentication endpoints are public, everything
// else requires a Bearer access token.
func New(deps Deps) http.Handler {
	h := &Handler{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
		r.Post("/logout", h.logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Route("/me", func(r chi.Router) {
			r.Get("/", h.me)
			r.Patch("/", h.updateProfile)
			r.Post("/password", h.changePassword)
			r.Get("/groups", h.myGroups)
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.myNotifications)
				r.Post("/read", h.markNotificationsRead)
				r.Get("/unread-count", h.unreadNotificationCount)
			})
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", h.createGroup)
			r.Post("/join", h.joinGroup)

			r.Route("/{groupID}", func(r chi.Router) {
				r.Get("/", h.getGroup)
				r.Patch("/", h.updateGroup)
				r.Delete("/", h.deleteGroup)

				r.Get("/members", h.groupMembers)
				r.Patch("/members/{userID}", h.changeMemberRole)
				r.Delete("/members/{userID}", h.removeMember)
				r.Post("/members/{userID}/adjust", h.adjustBalance)
				r.Get("/members/{userID}/level", h.memberLevel)
				r.Get("/members/{userID}/badges", h.memberBadges)

				r.Post("/invitations", h.createInvitation)

				r.Post("/tasks", h.createTask)
				r.Get("/tasks", h.listTasks)

				r.Get("/account", h.myAccount)
				r.Get("/account/transactions", h.myTransactions)

				r.Post("/rules", h.createRule)
				r.Get("/rules", h.listRules)

				r.Post("/rewards", h.createReward)
				r.Get("/rewards", h.listRewards)
				r.Get("/redemptions", h.myRedemptions)

				r.Post("/levels", h.createLevels)
				r.Get("/levels", h.listLevels)
				r.Delete("/levels/{levelID}", h.deleteLevel)

				r.Post("/badges", h.createBadge)
				r.Get("/badges", h.listBadges)
				r.Delete("/badges/{badgeID}", h.deleteBadge)

				r.Get("/leaderboard", h.leaderboard)
				r.Get("/leaderboard/snapshot", h.leaderboardSnapshot)
			})
		})

		r.Route("/tasks/{taskID}", func(r chi.Router) {
			r.Get("/", h.getTask)
			r.Patch("/", h.updateTask)
			r.Delete("/", h.deleteTask)
			r.Post("/take", h.takeTask)
			r.Post("/assign", h.assignTask)
			r.Post("/submit", h.submitTask)
			r.Post("/review", h.reviewTask)
			r.Post("/cancel", h.cancelTask)
			r.Get("/completions", h.taskCompletions)
		})

		r.Route("/rules/{ruleID}", func(r chi.Router) {
			r.Patch("/", h.updateRule)
			r.Delete("/", h.deleteRule)
		})

		r.Route("/rewards/{rewardID}", func(r chi.Router) {
			r.Get("/", h.getReward)
			r.Patch("/", h.updateReward)
			r.Delete("/", h.deleteReward)
			r.Post("/redeem", h.redeemReward)
		})
	})

	return r
}

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Error string `json:"error"`
}

// pageBody wraps paginated responses.
type pageBody struct {
	Items      any    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps semantic error kinds to HTTP statuses. Unrecognized errors
// are logged and reported as 500 without leaking internals.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "unhandled error in request", zap.Error(err))
		writeJSON(w, status, errorBody{Error: "internal server error"})

		return
	}

	writeJSON(w, status, errorBody{Error: err.Error()})
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// urlUUID parses a UUID path parameter.
func urlUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

// pagination reads the cursor and limit query parameters.
func pagination(r *http.Request) (string, uint) {
	cursor := r.URL.Query().Get("cursor")

	limit := uint(defaultPageSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil && parsed > 0 {
			limit = uint(parsed)
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return cursor, limit
}
