package v1handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
)

func (h *Handler) myNotifications(w http.ResponseWriter, r *http.Request) {
	cursor, limit := pagination(r)
	unreadOnly := r.URL.Query().Get("unread") == "true"

	items, next, err := h.deps.Notifier.UserNotifications(r.Context(), currentUser(r).ID, unreadOnly, cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: items, NextCursor: next})
}

type markReadRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type markReadResponse struct {
	Marked int64 `json:"marked"`
}

func (h *Handler) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	ids := make([]domain.NotificationID, 0, len(req.IDs))
	for _, id := range req.IDs {
		ids = append(ids, domain.NotificationID(id))
	}

	marked, err := h.deps.Notifier.MarkRead(r.Context(), currentUser(r).ID, ids...)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, markReadResponse{Marked: marked})
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

func (h *Handler) unreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.deps.Notifier.UnreadCount(r.Context(), currentUser(r).ID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, unreadCountResponse{Count: count})
}
