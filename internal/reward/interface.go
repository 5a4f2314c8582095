package reward

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

// CreateInput carries the fields accepted when creating a reward.
type CreateInput struct {
	Name         string
	Description  string
	Cost         int64
	Stock        *int
	PerUserLimit *int
	ValidFrom    time.Time
	ValidUntil   time.Time
}

//go:generate mockgen -package mockreward -source=interface.go -destination=mock/mockreward.go *
type Rewards interface {
	// Create adds a reward to the group catalog; requires an administrative
	// role.
	Create(ctx context.Context, actorID domain.UserID, groupID domain.GroupID, input CreateInput) (*domain.Reward, error)
	// Reward fetches a reward; requires group membership.
	Reward(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) (*domain.Reward, error)
	// Update modifies a reward; requires an administrative role.
	Update(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID, updates storage.RewardUpdates) (*domain.Reward, error)
	// Delete soft-deletes a reward; requires an administrative role.
	Delete(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) error
	// List returns a page of the group's rewards with an RFC3339 cursor.
	// Regular members only see active rewards.
	List(ctx context.Context,
		actorID domain.UserID,
		groupID domain.GroupID,
		cursor string,
		limit uint) ([]domain.Reward, string, error)

	// Redeem buys the reward with the caller's bonus points. The stock check,
	// the debit and the redemption record are one transaction serialized on a
	// row lock, so concurrent buyers cannot oversell the stock. Returns
	// serrors.ErrInsufficientFunds when the balance cannot cover the cost.
	Redeem(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) (*domain.Redemption, error)
	// Redemptions returns a page of the caller's redemptions in a group with
	// an RFC3339 cursor.
	Redemptions(ctx context.Context,
		actorID domain.UserID,
		groupID domain.GroupID,
		cursor string,
		limit uint) ([]domain.Redemption, string, error)
}
