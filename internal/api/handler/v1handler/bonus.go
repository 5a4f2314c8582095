package v1handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

func (h *Handler) myAccount(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	account, err := h.deps.Bonus.Account(r.Context(), domain.GroupID(groupID), currentUser(r).ID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) myTransactions(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	cursor, limit := pagination(r)

	items, next, err := h.deps.Bonus.Transactions(r.Context(), domain.GroupID(groupID), currentUser(r).ID, cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: items, NextCursor: next})
}

type adjustBalanceRequest struct {
	Amount int64 `json:"amount"`
	// Up selects the direction: true credits, false debits.
	Up          bool   `json:"up"`
	Description string `json:"description"`
}

func (h *Handler) adjustBalance(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}
	userID, err := urlUUID(r, "userID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireAdmin(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	var req adjustBalanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	tx, err := h.deps.Bonus.Adjust(r.Context(),
		currentUser(r).ID,
		domain.GroupID(groupID),
		domain.UserID(userID),
		req.Amount,
		req.Up,
		req.Description)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

type createRuleRequest struct {
	Name          string               `json:"name"`
	TaskID        *uuid.UUID           `json:"taskId"`
	TaskType      *domain.TaskType     `json:"taskType"`
	Amount        int64                `json:"amount"`
	Condition     domain.RuleCondition `json:"condition"`
	MinHoursEarly int                  `json:"minHoursEarly"`
}

func (h *Handler) createRule(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireAdmin(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	var req createRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	input := bonus.RuleInput{
		Name:          req.Name,
		TaskType:      req.TaskType,
		Amount:        req.Amount,
		Condition:     req.Condition,
		MinHoursEarly: req.MinHoursEarly,
	}
	if req.TaskID != nil {
		taskID := domain.TaskID(*req.TaskID)
		input.TaskID = &taskID
	}

	rule, err := h.deps.Bonus.CreateRule(r.Context(), domain.GroupID(groupID), input)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, rule)
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	cursor, limit := pagination(r)

	items, next, err := h.deps.Bonus.Rules(r.Context(), domain.GroupID(groupID), cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: items, NextCursor: next})
}

type updateRuleRequest struct {
	Name          *string              `json:"name"`
	Amount        *int64               `json:"amount"`
	Condition     domain.RuleCondition `json:"condition"`
	MinHoursEarly *int                 `json:"minHoursEarly"`
	Active        *bool                `json:"active"`
}

// adminRule loads the rule and checks the caller administers its group.
func (h *Handler) adminRule(r *http.Request) (*domain.Rule, error) {
	ruleID, err := urlUUID(r, "ruleID")
	if err != nil {
		return nil, err
	}

	rule, err := h.deps.Bonus.Rule(r.Context(), domain.RuleID(ruleID))
	if err != nil {
		return nil, err
	}
	if _, err := h.deps.Groups.RequireAdmin(r.Context(), rule.GroupID, currentUser(r).ID); err != nil {
		return nil, serrors.With(serrors.ErrForbidden, "administrative role required")
	}

	return rule, nil
}

func (h *Handler) updateRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.adminRule(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Bonus.UpdateRule(r.Context(), rule.ID, storage.RuleUpdates{
		Name:          req.Name,
		Amount:        req.Amount,
		Condition:     req.Condition,
		MinHoursEarly: req.MinHoursEarly,
		Active:        req.Active,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.adminRule(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Bonus.DeleteRule(r.Context(), rule.ID); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
