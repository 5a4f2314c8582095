package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

const (
	rewardsTable     = "rewards"
	redemptionsTable = "redemptions"
)

func (p *PgSQL) StoreReward(ctx context.Context, reward domain.Reward) (*domain.Reward, error) {
	var pgReward PgReward
	pgReward.FromDomain(reward)

	var row PgReward
	found, err := p.Builder.Insert(rewardsTable).
		Rows(pgReward).
		Returning(&PgReward{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "reward %q already exists in the group", reward.Name)
		}

		return nil, fmt.Errorf("could not store reward into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store reward into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RewardByID(ctx context.Context, id domain.RewardID) (*domain.Reward, error) {
	var row PgReward
	found, err := p.Builder.From(rewardsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reward by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RewardByIDForUpdate fetches a reward with a row lock so the stock check and
// the redemption insert are serialized across concurrent buyers.
func (p *PgSQL) RewardByIDForUpdate(ctx context.Context, id domain.RewardID) (*domain.Reward, error) {
	if !p.inTx() {
		return nil, storage.ErrNotInTx
	}

	var row PgReward
	found, err := p.Builder.From(rewardsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reward for update: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateRewardByID updates a single reward with provided fields. Only non-nil
// fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateRewardByID(ctx context.Context, id domain.RewardID, updates storage.RewardUpdates) (*domain.Reward, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}
	if updates.Cost != nil {
		rec["cost"] = *updates.Cost
	}
	if updates.Stock != nil {
		rec["stock"] = nullInt(*updates.Stock)
	}
	if updates.PerUserLimit != nil {
		rec["per_user_limit"] = nullInt(*updates.PerUserLimit)
	}
	if updates.Active != nil {
		rec["active"] = *updates.Active
	}
	if updates.ValidFrom != nil {
		rec["valid_from"] = nullTime(*updates.ValidFrom)
	}
	if updates.ValidUntil != nil {
		rec["valid_until"] = nullTime(*updates.ValidUntil)
	}

	var row PgReward
	found, err := p.Builder.Update(rewardsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReward{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update reward in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteReward performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteReward(ctx context.Context, id domain.RewardID) (*domain.Reward, error) {
	var row PgReward
	found, err := p.Builder.Update(rewardsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReward{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete reward in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RewardsByGroup returns a page of the group's rewards, ordered by created_at
// DESC, id DESC.
func (p *PgSQL) RewardsByGroup(ctx context.Context,
	groupID domain.GroupID,
	activeOnly bool,
	cursor time.Time,
	limit uint) (storage.GroupRewards, error) {
	w := []goqu.Expression{
		goqu.I("group_id").Eq(uuid.UUID(groupID)),
		goqu.I("deleted_at").IsNull(),
	}
	if activeOnly {
		w = append(w, goqu.I("active").IsTrue())
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgReward
	if err := p.Builder.From(rewardsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.GroupRewards{}, fmt.Errorf("could not fetch group rewards from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	rewards := make([]domain.Reward, 0, len(rows))
	for i := range rows {
		rewards = append(rewards, *rows[i].ToDomain())
	}

	return storage.GroupRewards{
		Rewards:    rewards,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) StoreRedemption(ctx context.Context, r domain.Redemption) (*domain.Redemption, error) {
	var pgRedemption PgRedemption
	pgRedemption.FromDomain(r)

	var row PgRedemption
	found, err := p.Builder.Insert(redemptionsTable).
		Rows(pgRedemption).
		Returning(&PgRedemption{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store redemption into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store redemption into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RedemptionCount(ctx context.Context, rewardID domain.RewardID) (int64, error) {
	count, err := p.Builder.From(redemptionsTable).
		Where(goqu.I("reward_id").Eq(uuid.UUID(rewardID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count redemptions in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) UserRedemptionCount(ctx context.Context, rewardID domain.RewardID, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(redemptionsTable).
		Where(
			goqu.I("reward_id").Eq(uuid.UUID(rewardID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count user redemptions in pg: %w", err)
	}

	return count, nil
}

// RedemptionsByUser returns a page of the user's redemptions in a group,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) RedemptionsByUser(ctx context.Context,
	groupID domain.GroupID,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserRedemptions, error) {
	w := []goqu.Expression{
		goqu.I("group_id").Eq(uuid.UUID(groupID)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgRedemption
	if err := p.Builder.From(redemptionsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserRedemptions{}, fmt.Errorf("could not fetch user redemptions from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	redemptions := make([]domain.Redemption, 0, len(rows))
	for i := range rows {
		redemptions = append(redemptions, *rows[i].ToDomain())
	}

	return storage.UserRedemptions{
		Redemptions: redemptions,
		NextCursor:  nextCursor,
	}, nil
}
