package v1handler

import (
	"net/http"
	"time"

	"github.com/mserjo/bossy/internal/reward"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

type createRewardRequest struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Cost         int64     `json:"cost"`
	Stock        *int      `json:"stock"`
	PerUserLimit *int      `json:"perUserLimit"`
	ValidFrom    time.Time `json:"validFrom"`
	ValidUntil   time.Time `json:"validUntil"`
}

func (h *Handler) createReward(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req createRewardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	created, err := h.deps.Rewards.Create(r.Context(), currentUser(r).ID, domain.GroupID(groupID), reward.CreateInput{
		Name:         req.Name,
		Description:  req.Description,
		Cost:         req.Cost,
		Stock:        req.Stock,
		PerUserLimit: req.PerUserLimit,
		ValidFrom:    req.ValidFrom,
		ValidUntil:   req.ValidUntil,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listRewards(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	cursor, limit := pagination(r)

	items, next, err := h.deps.Rewards.List(r.Context(), currentUser(r).ID, domain.GroupID(groupID), cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: items, NextCursor: next})
}

func (h *Handler) getReward(w http.ResponseWriter, r *http.Request) {
	rewardID, err := urlUUID(r, "rewardID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	found, err := h.deps.Rewards.Reward(r.Context(), currentUser(r).ID, domain.RewardID(rewardID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, found)
}

type updateRewardRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Cost         *int64     `json:"cost"`
	Stock        **int      `json:"stock"`
	PerUserLimit **int      `json:"perUserLimit"`
	Active       *bool      `json:"active"`
	ValidFrom    *time.Time `json:"validFrom"`
	ValidUntil   *time.Time `json:"validUntil"`
}

func (h *Handler) updateReward(w http.ResponseWriter, r *http.Request) {
	rewardID, err := urlUUID(r, "rewardID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateRewardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Rewards.Update(r.Context(), currentUser(r).ID, domain.RewardID(rewardID), storage.RewardUpdates{
		Name:         req.Name,
		Description:  req.Description,
		Cost:         req.Cost,
		Stock:        req.Stock,
		PerUserLimit: req.PerUserLimit,
		Active:       req.Active,
		ValidFrom:    req.ValidFrom,
		ValidUntil:   req.ValidUntil,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteReward(w http.ResponseWriter, r *http.Request) {
	rewardID, err := urlUUID(r, "rewardID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Rewards.Delete(r.Context(), currentUser(r).ID, domain.RewardID(rewardID)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) redeemReward(w http.ResponseWriter, r *http.Request) {
	rewardID, err := urlUUID(r, "rewardID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	redemption, err := h.deps.Rewards.Redeem(r.Context(), currentUser(r).ID, domain.RewardID(rewardID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, redemption)
}

func (h *Handler) myRedemptions(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	cursor, limit := pagination(r)

	items, next, err := h.deps.Rewards.Redemptions(r.Context(), currentUser(r).ID, domain.GroupID(groupID), cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: items, NextCursor: next})
}
