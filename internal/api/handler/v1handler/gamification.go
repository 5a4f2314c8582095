package v1handler

import (
	"net/http"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
)

type createLevelsRequest struct {
	Levels []struct {
		Name           string `json:"name"`
		Rank           int    `json:"rank"`
		RequiredPoints int64  `json:"requiredPoints"`
	} `json:"levels"`
}

func (h *Handler) createLevels(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireAdmin(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	var req createLevelsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if len(req.Levels) == 0 {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "at least one level is required"))

		return
	}

	levels := make([]domain.Level, 0, len(req.Levels))
	for _, level := range req.Levels {
		levels = append(levels, domain.Level{
			Name:           level.Name,
			Rank:           level.Rank,
			RequiredPoints: level.RequiredPoints,
		})
	}

	stored, err := h.deps.Gamification.CreateLevels(r.Context(), domain.GroupID(groupID), levels...)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) listLevels(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	levels, err := h.deps.Gamification.Levels(r.Context(), domain.GroupID(groupID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, levels)
}

func (h *Handler) deleteLevel(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}
	levelID, err := urlUUID(r, "levelID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireAdmin(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	// scope the delete to the group in the path
	levels, err := h.deps.Gamification.Levels(r.Context(), domain.GroupID(groupID))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if !containsLevel(levels, domain.LevelID(levelID)) {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "level not found"))

		return
	}

	if err := h.deps.Gamification.DeleteLevel(r.Context(), domain.LevelID(levelID)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) memberLevel(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	level, err := h.deps.Gamification.UserLevel(r.Context(), domain.GroupID(groupID), domain.UserID(userID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, level)
}

type createBadgeRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Condition   domain.BadgeCondition `json:"condition"`
	Threshold   int64                 `json:"threshold"`
}

func (h *Handler) createBadge(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireAdmin(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	var req createBadgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	badge, err := h.deps.Gamification.CreateBadge(r.Context(), domain.Badge{
		GroupID:     domain.GroupID(groupID),
		Name:        req.Name,
		Description: req.Description,
		Condition:   req.Condition,
		Threshold:   req.Threshold,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, badge)
}

func (h *Handler) listBadges(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	badges, err := h.deps.Gamification.Badges(r.Context(), domain.GroupID(groupID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, badges)
}

func (h *Handler) deleteBadge(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}
	badgeID, err := urlUUID(r, "badgeID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireAdmin(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	badges, err := h.deps.Gamification.Badges(r.Context(), domain.GroupID(groupID))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if !containsBadge(badges, domain.BadgeID(badgeID)) {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "badge not found"))

		return
	}

	if err := h.deps.Gamification.DeleteBadge(r.Context(), domain.BadgeID(badgeID)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) memberBadges(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	badges, err := h.deps.Gamification.UserBadges(r.Context(), domain.GroupID(groupID), domain.UserID(userID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, badges)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	_, limit := pagination(r)

	entries, err := h.deps.Gamification.Leaderboard(r.Context(), domain.GroupID(groupID), ratingPeriod(r), limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) leaderboardSnapshot(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlUUID(r, "groupID")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if _, err := h.deps.Groups.RequireMember(r.Context(), domain.GroupID(groupID), currentUser(r).ID); err != nil {
		writeError(w, r, err)

		return
	}

	snapshots, err := h.deps.Gamification.LatestSnapshot(r.Context(), domain.GroupID(groupID), ratingPeriod(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, snapshots)
}

// ratingPeriod reads the period query parameter, defaulting to all time.
func ratingPeriod(r *http.Request) domain.RatingPeriod {
	switch period := domain.RatingPeriod(r.URL.Query().Get("period")); period {
	case domain.RatingPeriodWeek, domain.RatingPeriodMonth:
		return period
	default:
		return domain.RatingPeriodAllTime
	}
}

func containsLevel(levels []domain.Level, id domain.LevelID) bool {
	for _, level := range levels {
		if level.ID == id {
			return true
		}
	}

	return false
}

func containsBadge(badges []domain.Badge, id domain.BadgeID) bool {
	for _, badge := range badges {
		if badge.ID == id {
			return true
		}
	}

	return false
}
