package storage

import (
	"context"

	"github.com/mserjo/bossy/pkg/domain"
)

// GamificationStorage defines persistence operations for level definitions,
// badges, awards and leaderboard snapshots.
type GamificationStorage interface {
	// StoreLevels inserts one or more level definitions and returns the stored
	// rows.
	StoreLevels(ctx context.Context, levels ...domain.Level) ([]domain.Level, error)
	// LevelsByGroup returns the group's level ladder ordered by rank ascending.
	LevelsByGroup(ctx context.Context, groupID domain.GroupID) ([]domain.Level, error)
	// DeleteLevel performs a soft delete and returns the deleted level, or nil
	// if it was not found.
	DeleteLevel(ctx context.Context, ID domain.LevelID) (*domain.Level, error)
	// StoreUserLevel records a level achievement. Returns false without error
	// when the achievement was already recorded.
	StoreUserLevel(ctx context.Context, ul domain.UserLevel) (bool, error)
	// UserLevels returns the user's level history in a group, newest first.
	UserLevels(ctx context.Context, groupID domain.GroupID, userID domain.UserID) ([]domain.UserLevel, error)

	// StoreBadge inserts a badge definition and returns the stored row.
	StoreBadge(ctx context.Context, badge domain.Badge) (*domain.Badge, error)
	// BadgesByGroup returns the group's badges; when activeOnly is set,
	// inactive badges are excluded.
	BadgesByGroup(ctx context.Context, groupID domain.GroupID, activeOnly bool) ([]domain.Badge, error)
	// DeleteBadge performs a soft delete and returns the deleted badge, or nil
	// if it was not found.
	DeleteBadge(ctx context.Context, ID domain.BadgeID) (*domain.Badge, error)
	// StoreUserBadge records a badge award. Returns false without error when
	// the badge was already awarded to the user.
	StoreUserBadge(ctx context.Context, ub domain.UserBadge) (bool, error)
	// UserBadges returns the badges awarded to a user in a group, newest
	// first.
	UserBadges(ctx context.Context, groupID domain.GroupID, userID domain.UserID) ([]domain.UserBadge, error)

	// StoreRatingSnapshots persists leaderboard standings taken at one point
	// in time.
	StoreRatingSnapshots(ctx context.Context, snapshots ...domain.RatingSnapshot) error
	// LatestRatingSnapshots returns the most recent snapshot of a group for
	// the given period, ordered by rank ascending.
	LatestRatingSnapshots(ctx context.Context, groupID domain.GroupID, period domain.RatingPeriod) ([]domain.RatingSnapshot, error)
	// RatedGroupIDs returns the IDs of all groups that have at least one bonus
	// account, i.e. the groups the snapshot worker needs to visit.
	RatedGroupIDs(ctx context.Context) ([]domain.GroupID, error)
}
