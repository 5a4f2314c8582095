package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
)

const (
	levelsTable          = "levels"
	userLevelsTable      = "user_levels"
	badgesTable          = "badges"
	userBadgesTable      = "user_badges"
	ratingSnapshotsTable = "rating_snapshots"
)

func (p *PgSQL) StoreLevels(ctx context.Context, levels ...domain.Level) ([]domain.Level, error) {
	if len(levels) == 0 {
		return nil, nil
	}

	pgLevels := make([]PgLevel, len(levels))
	for i := range pgLevels {
		pgLevels[i].FromDomain(levels[i])
	}

	var result []PgLevel
	if err := p.Builder.Insert(levelsTable).
		Rows(pgLevels).
		Returning(&PgLevel{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store levels into pg: %w", err)
	}

	out := make([]domain.Level, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) LevelsByGroup(ctx context.Context, groupID domain.GroupID) ([]domain.Level, error) {
	var rows []PgLevel
	if err := p.Builder.From(levelsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("rank").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch group levels from pg: %w", err)
	}

	out := make([]domain.Level, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// DeleteLevel performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteLevel(ctx context.Context, id domain.LevelID) (*domain.Level, error) {
	var row PgLevel
	found, err := p.Builder.Update(levelsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLevel{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete level in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreUserLevel records a level achievement, ignoring duplicates so the
// recalculation after every credit stays idempotent.
func (p *PgSQL) StoreUserLevel(ctx context.Context, ul domain.UserLevel) (bool, error) {
	res, err := p.DB.ExecContext(ctx,
		"INSERT INTO "+userLevelsTable+" (user_id, group_id, level_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
		uuid.UUID(ul.UserID), uuid.UUID(ul.GroupID), uuid.UUID(ul.LevelID))
	if err != nil {
		return false, fmt.Errorf("could not store user level into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) UserLevels(ctx context.Context, groupID domain.GroupID, userID domain.UserID) ([]domain.UserLevel, error) {
	var rows []PgUserLevel
	if err := p.Builder.From(userLevelsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Order(goqu.I("achieved_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user levels from pg: %w", err)
	}

	out := make([]domain.UserLevel, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreBadge(ctx context.Context, badge domain.Badge) (*domain.Badge, error) {
	var pgBadge PgBadge
	pgBadge.FromDomain(badge)

	var row PgBadge
	found, err := p.Builder.Insert(badgesTable).
		Rows(pgBadge).
		Returning(&PgBadge{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store badge into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store badge into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BadgesByGroup(ctx context.Context, groupID domain.GroupID, activeOnly bool) ([]domain.Badge, error) {
	w := []goqu.Expression{
		goqu.I("group_id").Eq(uuid.UUID(groupID)),
		goqu.I("deleted_at").IsNull(),
	}
	if activeOnly {
		w = append(w, goqu.I("active").IsTrue())
	}

	var rows []PgBadge
	if err := p.Builder.From(badgesTable).
		Where(w...).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch group badges from pg: %w", err)
	}

	out := make([]domain.Badge, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// DeleteBadge performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteBadge(ctx context.Context, id domain.BadgeID) (*domain.Badge, error) {
	var row PgBadge
	found, err := p.Builder.Update(badgesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgBadge{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete badge in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreUserBadge records a badge award, ignoring duplicates so badge checks
// after every approval stay idempotent.
func (p *PgSQL) StoreUserBadge(ctx context.Context, ub domain.UserBadge) (bool, error) {
	res, err := p.DB.ExecContext(ctx,
		"INSERT INTO "+userBadgesTable+" (badge_id, user_id, group_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING",
		uuid.UUID(ub.BadgeID), uuid.UUID(ub.UserID), uuid.UUID(ub.GroupID))
	if err != nil {
		return false, fmt.Errorf("could not store user badge into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) UserBadges(ctx context.Context, groupID domain.GroupID, userID domain.UserID) ([]domain.UserBadge, error) {
	var rows []PgUserBadge
	if err := p.Builder.From(userBadgesTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Order(goqu.I("awarded_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user badges from pg: %w", err)
	}

	out := make([]domain.UserBadge, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreRatingSnapshots(ctx context.Context, snapshots ...domain.RatingSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	pgSnapshots := make([]PgRatingSnapshot, len(snapshots))
	for i := range pgSnapshots {
		pgSnapshots[i].FromDomain(snapshots[i])
	}

	if _, err := p.Builder.Insert(ratingSnapshotsTable).
		Rows(pgSnapshots).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store rating snapshots into pg: %w", err)
	}

	return nil
}

// LatestRatingSnapshots returns the most recently taken snapshot set of a
// group for the given period, ordered by rank.
func (p *PgSQL) LatestRatingSnapshots(ctx context.Context,
	groupID domain.GroupID,
	period domain.RatingPeriod) ([]domain.RatingSnapshot, error) {
	latest := p.Builder.From(ratingSnapshotsTable).
		Select(goqu.MAX("taken_at")).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("period").Eq(string(period)),
		)

	var rows []PgRatingSnapshot
	if err := p.Builder.From(ratingSnapshotsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("period").Eq(string(period)),
			goqu.I("taken_at").Eq(latest),
		).
		Order(goqu.I("rank").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch rating snapshots from pg: %w", err)
	}

	out := make([]domain.RatingSnapshot, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// RatedGroupIDs lists the groups with at least one bonus account.
func (p *PgSQL) RatedGroupIDs(ctx context.Context) ([]domain.GroupID, error) {
	var rows []struct {
		GroupID uuid.UUID `db:"group_id"`
	}
	if err := p.Builder.From(accountsTable).
		Select(goqu.I("group_id")).
		Distinct().
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch rated group ids from pg: %w", err)
	}

	out := make([]domain.GroupID, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.GroupID(r.GroupID))
	}

	return out, nil
}
