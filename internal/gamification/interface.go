package gamification

import (
	"context"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

// Progress summarizes what a user unlocked after earning points.
type Progress struct {
	// Level is the newly reached level, nil when the user did not level up.
	Level *domain.Level
	// Badges lists badges awarded by this progression check.
	Badges []domain.Badge
}

//go:generate mockgen -package mockgamification -source=interface.go -destination=mock/mockgamification.go *
type Gamification interface {
	// CreateLevels adds level definitions to a group's ladder.
	CreateLevels(ctx context.Context, groupID domain.GroupID, levels ...domain.Level) ([]domain.Level, error)
	// Levels returns the group's level ladder ordered by rank.
	Levels(ctx context.Context, groupID domain.GroupID) ([]domain.Level, error)
	// DeleteLevel removes a level definition.
	DeleteLevel(ctx context.Context, levelID domain.LevelID) error
	// UserLevel returns the user's current level in the group, nil when the
	// ladder is empty or the user has not reached the first level.
	UserLevel(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Level, error)

	// CreateBadge adds a badge definition to a group.
	CreateBadge(ctx context.Context, badge domain.Badge) (*domain.Badge, error)
	// Badges returns the group's badge definitions.
	Badges(ctx context.Context, groupID domain.GroupID) ([]domain.Badge, error)
	// DeleteBadge removes a badge definition.
	DeleteBadge(ctx context.Context, badgeID domain.BadgeID) error
	// UserBadges returns the badges awarded to a user in a group.
	UserBadges(ctx context.Context, groupID domain.GroupID, userID domain.UserID) ([]domain.UserBadge, error)

	// Leaderboard computes the group standing over the given period from the
	// ledger.
	Leaderboard(ctx context.Context,
		groupID domain.GroupID,
		period domain.RatingPeriod,
		limit uint) ([]domain.LeaderboardEntry, error)
	// SnapshotGroup persists the current standings of a group for all
	// periods. Called by the snapshot worker.
	SnapshotGroup(ctx context.Context, groupID domain.GroupID) error
	// LatestSnapshot returns the most recent persisted standing of a group
	// for the period.
	LatestSnapshot(ctx context.Context,
		groupID domain.GroupID,
		period domain.RatingPeriod) ([]domain.RatingSnapshot, error)

	// OnPointsEarnedTx re-evaluates levels and badges for a user after a
	// credit, inside the caller's transaction. It is idempotent.
	OnPointsEarnedTx(ctx context.Context,
		tx storage.AllStorage,
		groupID domain.GroupID,
		userID domain.UserID) (*Progress, error)
}
