package gamification

import (
	"context"
	"fmt"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// leaderboardLimit caps how many rows a computed standing carries.
const leaderboardLimit = 100

// streakLookbackDays bounds the history scanned for streak badges.
const streakLookbackDays = 400

// gamification is the concrete implementation of the Gamification interface.
type gamification struct {
	storage storage.Storage
}

func (g gamification) CreateLevels(ctx context.Context, groupID domain.GroupID, levels ...domain.Level) ([]domain.Level, error) {
	for i := range levels {
		if levels[i].RequiredPoints < 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "required points cannot be negative")
		}
		levels[i].GroupID = groupID
	}

	stored, err := g.storage.StoreLevels(ctx, levels...)
	if err != nil {
		return nil, fmt.Errorf("could not create levels: %w", err)
	}

	return stored, nil
}

func (g gamification) Levels(ctx context.Context, groupID domain.GroupID) ([]domain.Level, error) {
	levels, err := g.storage.LevelsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get group levels: %w", err)
	}

	return levels, nil
}

func (g gamification) DeleteLevel(ctx context.Context, levelID domain.LevelID) error {
	level, err := g.storage.DeleteLevel(ctx, levelID)
	if err != nil {
		return fmt.Errorf("could not delete level: %w", err)
	}
	if level == nil {
		return serrors.With(serrors.ErrNotFound, "level not found")
	}

	return nil
}

// UserLevel computes the current level from lifetime earned points and the
// group ladder.
func (g gamification) UserLevel(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Level, error) {
	account, err := g.storage.Account(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if account == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	levels, err := g.storage.LevelsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get group levels: %w", err)
	}

	return currentLevel(levels, account.Earned), nil
}

func (g gamification) CreateBadge(ctx context.Context, badge domain.Badge) (*domain.Badge, error) {
	if badge.Threshold <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "badge threshold must be positive")
	}

	badge.Active = true
	stored, err := g.storage.StoreBadge(ctx, badge)
	if err != nil {
		return nil, fmt.Errorf("could not create badge: %w", err)
	}

	return stored, nil
}

func (g gamification) Badges(ctx context.Context, groupID domain.GroupID) ([]domain.Badge, error) {
	badges, err := g.storage.BadgesByGroup(ctx, groupID, false)
	if err != nil {
		return nil, fmt.Errorf("could not get group badges: %w", err)
	}

	return badges, nil
}

func (g gamification) DeleteBadge(ctx context.Context, badgeID domain.BadgeID) error {
	badge, err := g.storage.DeleteBadge(ctx, badgeID)
	if err != nil {
		return fmt.Errorf("could not delete badge: %w", err)
	}
	if badge == nil {
		return serrors.With(serrors.ErrNotFound, "badge not found")
	}

	return nil
}

func (g gamification) UserBadges(ctx context.Context, groupID domain.GroupID, userID domain.UserID) ([]domain.UserBadge, error) {
	badges, err := g.storage.UserBadges(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user badges: %w", err)
	}

	return badges, nil
}

func (g gamification) Leaderboard(ctx context.Context,
	groupID domain.GroupID,
	period domain.RatingPeriod,
	limit uint) ([]domain.LeaderboardEntry, error) {
	if limit == 0 || limit > leaderboardLimit {
		limit = leaderboardLimit
	}

	entries, err := g.storage.EarnedSince(ctx, groupID, period.Since(time.Now()), limit)
	if err != nil {
		return nil, fmt.Errorf("could not compute leaderboard: %w", err)
	}

	return entries, nil
}

// SnapshotGroup persists the current standings for every rating period.
func (g gamification) SnapshotGroup(ctx context.Context, groupID domain.GroupID) error {
	now := time.Now()
	periods := []domain.RatingPeriod{
		domain.RatingPeriodWeek,
		domain.RatingPeriodMonth,
		domain.RatingPeriodAllTime,
	}

	var snapshots []domain.RatingSnapshot
	for _, period := range periods {
		entries, err := g.storage.EarnedSince(ctx, groupID, period.Since(now), leaderboardLimit)
		if err != nil {
			return fmt.Errorf("could not compute standings: %w", err)
		}

		for _, entry := range entries {
			snapshots = append(snapshots, domain.RatingSnapshot{
				GroupID: groupID,
				UserID:  entry.UserID,
				Period:  period,
				Points:  entry.Points,
				Rank:    entry.Rank,
				TakenAt: now,
			})
		}
	}

	if err := g.storage.StoreRatingSnapshots(ctx, snapshots...); err != nil {
		return fmt.Errorf("could not store rating snapshots: %w", err)
	}

	return nil
}

func (g gamification) LatestSnapshot(ctx context.Context,
	groupID domain.GroupID,
	period domain.RatingPeriod) ([]domain.RatingSnapshot, error) {
	snapshots, err := g.storage.LatestRatingSnapshots(ctx, groupID, period)
	if err != nil {
		return nil, fmt.Errorf("could not get rating snapshots: %w", err)
	}

	return snapshots, nil
}

// OnPointsEarnedTx re-checks level and badge thresholds after a credit. Both
// checks are idempotent: achievements are recorded with ON CONFLICT DO
// NOTHING semantics and only newly recorded ones are reported.
func (g gamification) OnPointsEarnedTx(ctx context.Context,
	tx storage.AllStorage,
	groupID domain.GroupID,
	userID domain.UserID) (*Progress, error) {
	account, err := tx.Account(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if account == nil {
		return &Progress{}, nil
	}

	progress := &Progress{}

	levels, err := tx.LevelsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not get group levels: %w", err)
	}
	if level := currentLevel(levels, account.Earned); level != nil {
		inserted, err := tx.StoreUserLevel(ctx, domain.UserLevel{
			UserID:  userID,
			GroupID: groupID,
			LevelID: level.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("could not store user level: %w", err)
		}
		if inserted {
			progress.Level = level
		}
	}

	badges, err := tx.BadgesByGroup(ctx, groupID, true)
	if err != nil {
		return nil, fmt.Errorf("could not get group badges: %w", err)
	}
	for _, badge := range badges {
		met, err := g.badgeConditionMetTx(ctx, tx, badge, groupID, userID, account.Earned)
		if err != nil {
			return nil, err
		}
		if !met {
			continue
		}

		inserted, err := tx.StoreUserBadge(ctx, domain.UserBadge{
			BadgeID: badge.ID,
			UserID:  userID,
			GroupID: groupID,
		})
		if err != nil {
			return nil, fmt.Errorf("could not store user badge: %w", err)
		}
		if inserted {
			progress.Badges = append(progress.Badges, badge)
		}
	}

	return progress, nil
}

// badgeConditionMetTx checks one badge threshold against the user's stats.
func (g gamification) badgeConditionMetTx(ctx context.Context,
	tx storage.AllStorage,
	badge domain.Badge,
	groupID domain.GroupID,
	userID domain.UserID,
	earned int64) (bool, error) {
	switch badge.Condition {
	case domain.BadgeOnPoints:
		return earned >= badge.Threshold, nil
	case domain.BadgeOnCompletions:
		count, err := tx.ApprovedCompletionCount(ctx, groupID, userID)
		if err != nil {
			return false, fmt.Errorf("could not count approved completions: %w", err)
		}

		return count >= badge.Threshold, nil
	case domain.BadgeOnStreak:
		days, err := tx.ApprovedCompletionDays(ctx, groupID, userID, streakLookbackDays)
		if err != nil {
			return false, fmt.Errorf("could not fetch completion days: %w", err)
		}

		return int64(longestRecentStreak(days)) >= badge.Threshold, nil
	default:
		return false, nil
	}
}

// currentLevel returns the highest level covered by the earned total, or nil.
// The ladder is expected in ascending rank order.
func currentLevel(levels []domain.Level, earned int64) *domain.Level {
	var current *domain.Level
	for i := range levels {
		if earned >= levels[i].RequiredPoints {
			current = &levels[i]
		}
	}

	return current
}

// longestRecentStreak counts consecutive days ending at the newest entry.
// Days must be distinct midnight timestamps in descending order.
func longestRecentStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			streak++

			continue
		}

		break
	}

	return streak
}

// New creates a new Gamification instance backed by the provided storage.
func New(storage storage.Storage) Gamification {
	return &gamification{storage: storage}
}
