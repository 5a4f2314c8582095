package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/internal/group"
	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// rewards is the concrete implementation of the Rewards interface.
type rewards struct {
	storage  storage.Storage
	groups   group.Groups
	bonus    bonus.Bonus
	notifier notification.Notifier
}

func (r rewards) Create(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	input CreateInput) (*domain.Reward, error) {
	if _, err := r.groups.RequireAdmin(ctx, groupID, actorID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "reward name is required")
	}
	if input.Cost <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "reward cost must be positive")
	}
	if input.Stock != nil && *input.Stock <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "reward stock must be positive")
	}
	if input.PerUserLimit != nil && *input.PerUserLimit <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "per-user limit must be positive")
	}

	stored, err := r.storage.StoreReward(ctx, domain.Reward{
		GroupID:      groupID,
		Name:         input.Name,
		Description:  input.Description,
		Cost:         input.Cost,
		Stock:        input.Stock,
		PerUserLimit: input.PerUserLimit,
		Active:       true,
		ValidFrom:    input.ValidFrom,
		ValidUntil:   input.ValidUntil,
		CreatedBy:    actorID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create reward: %w", err)
	}

	return stored, nil
}

func (r rewards) Reward(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) (*domain.Reward, error) {
	return r.memberReward(ctx, actorID, rewardID)
}

func (r rewards) Update(ctx context.Context,
	actorID domain.UserID,
	rewardID domain.RewardID,
	updates storage.RewardUpdates) (*domain.Reward, error) {
	reward, err := r.memberReward(ctx, actorID, rewardID)
	if err != nil {
		return nil, err
	}
	if _, err := r.groups.RequireAdmin(ctx, reward.GroupID, actorID); err != nil {
		return nil, err
	}
	if updates.Cost != nil && *updates.Cost <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "reward cost must be positive")
	}

	updated, err := r.storage.UpdateRewardByID(ctx, rewardID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update reward: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "reward not found")
	}

	return updated, nil
}

func (r rewards) Delete(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) error {
	reward, err := r.memberReward(ctx, actorID, rewardID)
	if err != nil {
		return err
	}
	if _, err := r.groups.RequireAdmin(ctx, reward.GroupID, actorID); err != nil {
		return err
	}

	deleted, err := r.storage.DeleteReward(ctx, rewardID)
	if err != nil {
		return fmt.Errorf("could not delete reward: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "reward not found")
	}

	return nil
}

func (r rewards) List(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	cursor string,
	limit uint) ([]domain.Reward, string, error) {
	membership, err := r.groups.RequireMember(ctx, groupID, actorID)
	if err != nil {
		return nil, "", err
	}

	var cursorTime time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = parsed
	}

	page, err := r.storage.RewardsByGroup(ctx, groupID, !membership.Role.CanAdminister(), cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get group rewards: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Rewards, next, nil
}

// Redeem performs the purchase: lock the reward row, check availability and
// limits, debit the account and record the redemption.
func (r rewards) Redeem(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) (*domain.Redemption, error) {
	_, err := r.memberReward(ctx, actorID, rewardID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var redemption *domain.Redemption
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		locked, err := tx.RewardByIDForUpdate(ctx, rewardID)
		if err != nil {
			return fmt.Errorf("could not lock reward: %w", err)
		}
		if locked == nil || !locked.Available(now) {
			return serrors.With(serrors.ErrConflict, "reward is not available")
		}

		if locked.Stock != nil {
			count, err := tx.RedemptionCount(ctx, rewardID)
			if err != nil {
				return fmt.Errorf("could not count redemptions: %w", err)
			}
			if count >= int64(*locked.Stock) {
				return serrors.With(serrors.ErrConflict, "reward is out of stock")
			}
		}
		if locked.PerUserLimit != nil {
			count, err := tx.UserRedemptionCount(ctx, rewardID, actorID)
			if err != nil {
				return fmt.Errorf("could not count user redemptions: %w", err)
			}
			if count >= int64(*locked.PerUserLimit) {
				return serrors.With(serrors.ErrConflict, "per-user redemption limit reached")
			}
		}

		redemption, err = tx.StoreRedemption(ctx, domain.Redemption{
			RewardID: rewardID,
			GroupID:  locked.GroupID,
			UserID:   actorID,
			Spent:    locked.Cost,
		})
		if err != nil {
			return fmt.Errorf("could not store redemption: %w", err)
		}

		if _, err := r.bonus.DebitTx(ctx, tx, bonus.Entry{
			GroupID:      locked.GroupID,
			UserID:       actorID,
			Type:         domain.TransactionDebit,
			Amount:       locked.Cost,
			Description:  locked.Name,
			RedemptionID: &redemption.ID,
		}); err != nil {
			return err
		}

		return r.notifier.NotifyTx(ctx, tx, domain.Notification{
			UserID:  actorID,
			Type:    domain.NotificationRewardRedeemed,
			Title:   fmt.Sprintf("You redeemed %s for %d", locked.Name, locked.Cost),
			GroupID: &locked.GroupID,
		})
	}); err != nil {
		return nil, err
	}

	return redemption, nil
}

func (r rewards) Redemptions(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	cursor string,
	limit uint) ([]domain.Redemption, string, error) {
	if _, err := r.groups.RequireMember(ctx, groupID, actorID); err != nil {
		return nil, "", err
	}

	var cursorTime time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = parsed
	}

	page, err := r.storage.RedemptionsByUser(ctx, groupID, actorID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get redemptions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Redemptions, next, nil
}

// memberReward fetches the reward and checks the caller's membership in its
// group.
func (r rewards) memberReward(ctx context.Context, actorID domain.UserID, rewardID domain.RewardID) (*domain.Reward, error) {
	reward, err := r.storage.RewardByID(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reward: %w", err)
	}
	if reward == nil {
		return nil, serrors.With(serrors.ErrNotFound, "reward not found")
	}

	if _, err := r.groups.RequireMember(ctx, reward.GroupID, actorID); err != nil {
		return nil, err
	}

	return reward, nil
}

// New creates a new Rewards instance backed by the provided storage and
// collaborating services.
func New(storage storage.Storage, groups group.Groups, bonus bonus.Bonus, notifier notification.Notifier) Rewards {
	return &rewards{
		storage:  storage,
		groups:   groups,
		bonus:    bonus,
		notifier: notifier,
	}
}
