package v1handler

import (
	"net/http"

	"github.com/mserjo/bossy/internal/group"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

type createGroupRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Type           domain.GroupType `json:"type"`
	Currency       string           `json:"currency"`
	AllowProposals bool             `json:"allowProposals"`
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	created, err := h.deps.Groups.Create(r.Context(), currentUser(r).ID, group.CreateInput{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Currency:       req.Currency,
		AllowProposals: req.AllowProposals,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	grp, err := h.deps.Groups.Group(r.Context(), currentUser(r).ID, domain.GroupID(groupID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, grp)
}

type updateGroupRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Currency       *string `json:"currency"`
	AllowProposals *bool   `json:"allowProposals"`
}

func (h *Handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req updateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	updated, err := h.deps.Groups.Update(r.Context(), currentUser(r).ID, domain.GroupID(groupID), storageGroupUpdates(req))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Groups.Delete(r.Context(), currentUser(r).ID, domain.GroupID(groupID)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) myGroups(w http.ResponseWriter, r *http.Request) {
	cursor, limit := pagination(r)

	groups, next, err := h.deps.Groups.UserGroups(r.Context(), currentUser(r).ID, cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pageBody{Items: groups, NextCursor: next})
}

func (h *Handler) groupMembers(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	members, err := h.deps.Groups.Members(r.Context(), currentUser(r).ID, domain.GroupID(groupID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, members)
}

type changeRoleRequest struct {
	Role domain.GroupRole `json:"role"`
}

func (h *Handler) changeMemberRole(w http.ResponseWriter, r *http.Request) {
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

	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	membership, err := h.deps.Groups.ChangeRole(r.Context(),
		currentUser(r).ID,
		domain.GroupID(groupID),
		domain.UserID(userID),
		req.Role)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, membership)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
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

	if err := h.deps.Groups.RemoveMember(r.Context(),
		currentUser(r).ID,
		domain.GroupID(groupID),
		domain.UserID(userID)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createInvitationRequest struct {
	Role domain.GroupRole `json:"role"`
}

func (h *Handler) createInvitation(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req createInvitationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	invitation, err := h.deps.Groups.Invite(r.Context(), currentUser(r).ID, domain.GroupID(groupID), req.Role)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, invitation)
}

func storageGroupUpdates(req updateGroupRequest) storage.GroupUpdates {
	return storage.GroupUpdates{
		Name:           req.Name,
		Description:    req.Description,
		Currency:       req.Currency,
		AllowProposals: req.AllowProposals,
	}
}

type joinGroupRequest struct {
	Code string `json:"code"`
}

func (h *Handler) joinGroup(w http.ResponseWriter, r *http.Request) {
	var req joinGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	grp, err := h.deps.Groups.Join(r.Context(), currentUser(r).ID, req.Code)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, grp)
}
