package storage

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
)

// RewardUpdates describes a set of optional fields that can be applied to an
// existing reward during an update. Only non-nil fields will be updated.
type RewardUpdates struct {
	Name        *string
	Description *string
	Cost        *int64
	// Stock, when provided, replaces the stock limit. A pointer to nil clears
	// the limit.
	Stock **int
	// PerUserLimit behaves like Stock for the per-user cap.
	PerUserLimit **int
	// Active, when provided, toggles the reward.
	Active *bool
	// ValidFrom/ValidUntil, when provided, replace the validity window. The
	// zero time clears the corresponding bound.
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// GroupRewards groups a page of rewards together with an optional NextCursor
// used for pagination.
type GroupRewards struct {
	Rewards []domain.Reward
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// UserRedemptions groups a page of redemptions together with an optional
// NextCursor used for pagination.
type UserRedemptions struct {
	Redemptions []domain.Redemption
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// RewardStorage defines persistence operations for the reward catalog and
// redemption records. Soft-deleted rewards are excluded from all lookups.
type RewardStorage interface {
	// StoreReward inserts a reward and returns the stored row. Returns
	// serrors.ErrConflict when the name is already taken within the group.
	StoreReward(ctx context.Context, reward domain.Reward) (*domain.Reward, error)
	// RewardByID fetches a reward by ID. Returns nil when not found.
	RewardByID(ctx context.Context, ID domain.RewardID) (*domain.Reward, error)
	// RewardByIDForUpdate fetches a reward with a row lock so that concurrent
	// redemptions serialize on the stock check. Must be called inside a
	// transaction; returns ErrNotInTx otherwise.
	RewardByIDForUpdate(ctx context.Context, ID domain.RewardID) (*domain.Reward, error)
	// UpdateRewardByID applies the provided field set to a single reward and
	// returns the updated row, or nil when the reward does not exist.
	UpdateRewardByID(ctx context.Context, ID domain.RewardID, updates RewardUpdates) (*domain.Reward, error)
	// DeleteReward performs a soft delete and returns the deleted reward, or
	// nil if it was not found.
	DeleteReward(ctx context.Context, ID domain.RewardID) (*domain.Reward, error)
	// RewardsByGroup returns a page of the group's rewards, newest first. When
	// activeOnly is set, inactive rewards are excluded.
	RewardsByGroup(ctx context.Context, groupID domain.GroupID, activeOnly bool, cursor time.Time, limit uint) (GroupRewards, error)

	// StoreRedemption inserts a redemption record.
	StoreRedemption(ctx context.Context, r domain.Redemption) (*domain.Redemption, error)
	// RedemptionCount returns the total number of redemptions of a reward.
	RedemptionCount(ctx context.Context, rewardID domain.RewardID) (int64, error)
	// UserRedemptionCount returns the number of redemptions of a reward by one
	// user.
	UserRedemptionCount(ctx context.Context, rewardID domain.RewardID, userID domain.UserID) (int64, error)
	// RedemptionsByUser returns a page of the user's redemptions in a group,
	// newest first.
	RedemptionsByUser(ctx context.Context, groupID domain.GroupID, userID domain.UserID, cursor time.Time, limit uint) (UserRedemptions, error)
}
