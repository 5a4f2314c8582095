package v1handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mserjo/bossy/internal/task"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

type createTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Type        domain.TaskType     `json:"type"`
	Priority    domain.TaskPriority `json:"priority"`
	Points      int64               `json:"points"`
	AssigneeID  *uuid.UUID          `json:"assigneeId"`
	DueAt       time.Time           `json:"dueAt"`
	Recurrence  domain.Recurrence   `json:"recurrence"`
	RecurEndAt  time.Time           `json:"recurEndAt"`
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	input := task.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Priority:    req.Priority,
		Points:      req.Points,
		DueAt:       req.DueAt,
		Recurrence:  req.Recurrence,
		RecurEndAt:  req.RecurEndAt,
	}
	if req.AssigneeID != nil {
		assigneeID := domain.UserID(*req.AssigneeID)
		input.AssigneeID = &assigneeID
	}

	created, err := h.deps.Tasks.Create(r.Context(), currentUser(r).ID, domain.GroupID(groupID), input)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	query := r.URL.Query()
	filter := task.ListFilter{
		Status:        domain.TaskStatus(query.Get("status")),
		Type:          domain.TaskType(query.Get("type")),
		TemplatesOnly: query.Get("templates") == "true",
	}
	if raw := query.Get("assigneeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid assigneeId"))

			return
		}
		assigneeID := domain.UserID(id)
		filter.AssigneeID = &assigneeID
	}

	cursor, limit := pagination(r)

	items, next, err := h.deps.Tasks.List(r.Context(), currentUser(r).ID, domain.GroupID(groupID), filter, cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: items, NextCursor: next})
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	found, err := h.deps.Tasks.Task(r.Context(), currentUser(r).ID, domain.TaskID(taskID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, found)
}

type updateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Priority    *domain.TaskPriority `json:"priority"`
	Points      *int64               `json:"points"`
	DueAt       *time.Time           `json:"dueAt"`
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Tasks.Update(r.Context(), currentUser(r).ID, domain.TaskID(taskID), storage.TaskUpdates{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Points:      req.Points,
		DueAt:       req.DueAt,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Tasks.Delete(r.Context(), currentUser(r).ID, domain.TaskID(taskID)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) takeTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Tasks.Take(r.Context(), currentUser(r).ID, domain.TaskID(taskID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type assignTaskRequest struct {
	AssigneeID uuid.UUID `json:"assigneeId"`
}

func (h *Handler) assignTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req assignTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Tasks.Assign(r.Context(),
		currentUser(r).ID,
		domain.TaskID(taskID),
		domain.UserID(req.AssigneeID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) submitTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Tasks.Submit(r.Context(), currentUser(r).ID, domain.TaskID(taskID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type reviewTaskRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

func (h *Handler) reviewTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req reviewTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Tasks.Review(r.Context(), currentUser(r).ID, domain.TaskID(taskID), req.Approve, req.Note)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) cancelTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Tasks.Cancel(r.Context(), currentUser(r).ID, domain.TaskID(taskID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) taskCompletions(w http.ResponseWriter, r *http.Request) {
	taskID, err := urlUUID(r, "taskID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	completions, err := h.deps.Tasks.Completions(r.Context(), currentUser(r).ID, domain.TaskID(taskID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, completions)
}
