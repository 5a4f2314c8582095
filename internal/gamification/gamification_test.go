package gamification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mserjo/bossy/internal/gamification"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	mockstorage "github.com/mserjo/bossy/pkg/storage/mock"
)

func newTestGamification(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, gamification.Gamification) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, gamification.New(st)
}

// ladder returns a three-step level ladder for a group, ascending by rank.
func ladder(groupID domain.GroupID) []domain.Level {
	return []domain.Level{
		{ID: domain.LevelID(uuid.New()), GroupID: groupID, Name: "Novice", Rank: 1, RequiredPoints: 0},
		{ID: domain.LevelID(uuid.New()), GroupID: groupID, Name: "Expert", Rank: 2, RequiredPoints: 100},
		{ID: domain.LevelID(uuid.New()), GroupID: groupID, Name: "Master", Rank: 3, RequiredPoints: 500},
	}
}

func TestGamification_CreateLevels(t *testing.T) {
	_, st, g := newTestGamification(t)
	groupID := domain.GroupID(uuid.New())

	st.EXPECT().StoreLevels(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, levels ...domain.Level) ([]domain.Level, error) {
			// the group ID is stamped onto every definition
			for _, level := range levels {
				require.Equal(t, groupID, level.GroupID)
			}

			return levels, nil
		},
	)

	stored, err := g.CreateLevels(context.Background(), groupID,
		domain.Level{Name: "Novice", Rank: 1, RequiredPoints: 0},
		domain.Level{Name: "Expert", Rank: 2, RequiredPoints: 100},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	t.Run("negative required points", func(t *testing.T) {
		_, err := g.CreateLevels(context.Background(), groupID,
			domain.Level{Name: "Broken", Rank: 1, RequiredPoints: -1})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestGamification_UserLevel(t *testing.T) {
	_, st, g := newTestGamification(t)
	ctx := context.Background()

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	levels := ladder(groupID)

	t.Run("picks the highest level covered by earned points", func(t *testing.T) {
		st.EXPECT().Account(gomock.Any(), groupID, userID).
			Return(&domain.Account{Earned: 150}, nil)
		st.EXPECT().LevelsByGroup(gomock.Any(), groupID).Return(levels, nil)

		level, err := g.UserLevel(ctx, groupID, userID)
		require.NoError(t, err)
		require.NotNil(t, level)
		require.Equal(t, "Expert", level.Name)
	})

	t.Run("empty ladder means no level", func(t *testing.T) {
		st.EXPECT().Account(gomock.Any(), groupID, userID).
			Return(&domain.Account{Earned: 150}, nil)
		st.EXPECT().LevelsByGroup(gomock.Any(), groupID).Return(nil, nil)

		level, err := g.UserLevel(ctx, groupID, userID)
		require.NoError(t, err)
		require.Nil(t, level)
	})

	t.Run("missing account", func(t *testing.T) {
		st.EXPECT().Account(gomock.Any(), groupID, userID).Return(nil, nil)

		_, err := g.UserLevel(ctx, groupID, userID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestGamification_CreateBadge(t *testing.T) {
	_, st, g := newTestGamification(t)

	st.EXPECT().StoreBadge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, badge domain.Badge) (*domain.Badge, error) {
			require.True(t, badge.Active)

			return &badge, nil
		},
	)

	badge, err := g.CreateBadge(context.Background(), domain.Badge{
		Name:      "First Steps",
		Condition: domain.BadgeOnCompletions,
		Threshold: 1,
	})
	require.NoError(t, err)
	require.True(t, badge.Active)

	t.Run("threshold must be positive", func(t *testing.T) {
		_, err := g.CreateBadge(context.Background(), domain.Badge{
			Name:      "Broken",
			Condition: domain.BadgeOnPoints,
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestGamification_Leaderboard_ClampsLimit(t *testing.T) {
	_, st, g := newTestGamification(t)
	groupID := domain.GroupID(uuid.New())

	entries := []domain.LeaderboardEntry{{Rank: 1, Points: 30}}
	st.EXPECT().EarnedSince(gomock.Any(), groupID, gomock.Any(), uint(100)).Return(entries, nil)

	got, err := g.Leaderboard(context.Background(), groupID, domain.RatingPeriodAllTime, 0)
	require.NoError(t, err)
	require.Equal(t, entries, got)

	st.EXPECT().EarnedSince(gomock.Any(), groupID, gomock.Any(), uint(10)).Return(entries, nil)
	_, err = g.Leaderboard(context.Background(), groupID, domain.RatingPeriodWeek, 10)
	require.NoError(t, err)
}

func TestGamification_SnapshotGroup(t *testing.T) {
	_, st, g := newTestGamification(t)
	groupID := domain.GroupID(uuid.New())

	alice := domain.UserID(uuid.New())
	bob := domain.UserID(uuid.New())
	entries := []domain.LeaderboardEntry{
		{Rank: 1, UserID: alice, Points: 30},
		{Rank: 2, UserID: bob, Points: 20},
	}

	// one standing per rating period
	st.EXPECT().EarnedSince(gomock.Any(), groupID, gomock.Any(), gomock.Any()).Return(entries, nil).Times(3)
	st.EXPECT().StoreRatingSnapshots(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshots ...domain.RatingSnapshot) error {
			require.Len(t, snapshots, 6)

			periods := map[domain.RatingPeriod]int{}
			for _, s := range snapshots {
				require.Equal(t, groupID, s.GroupID)
				require.Equal(t, snapshots[0].TakenAt, s.TakenAt)
				periods[s.Period]++
			}
			require.Equal(t, map[domain.RatingPeriod]int{
				domain.RatingPeriodWeek:    2,
				domain.RatingPeriodMonth:   2,
				domain.RatingPeriodAllTime: 2,
			}, periods)

			return nil
		},
	)

	require.NoError(t, g.SnapshotGroup(context.Background(), groupID))
}

func TestGamification_OnPointsEarnedTx_LevelUp(t *testing.T) {
	ctrl, _, g := newTestGamification(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	levels := ladder(groupID)

	tx.EXPECT().Account(gomock.Any(), groupID, userID).Return(&domain.Account{Earned: 120}, nil)
	tx.EXPECT().LevelsByGroup(gomock.Any(), groupID).Return(levels, nil)
	tx.EXPECT().StoreUserLevel(gomock.Any(), domain.UserLevel{
		UserID:  userID,
		GroupID: groupID,
		LevelID: levels[1].ID,
	}).Return(true, nil)
	tx.EXPECT().BadgesByGroup(gomock.Any(), groupID, true).Return(nil, nil)

	progress, err := g.OnPointsEarnedTx(context.Background(), tx, groupID, userID)
	require.NoError(t, err)
	require.NotNil(t, progress.Level)
	require.Equal(t, "Expert", progress.Level.Name)
	require.Empty(t, progress.Badges)
}

func TestGamification_OnPointsEarnedTx_LevelAlreadyRecorded(t *testing.T) {
	ctrl, _, g := newTestGamification(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	levels := ladder(groupID)

	tx.EXPECT().Account(gomock.Any(), groupID, userID).Return(&domain.Account{Earned: 120}, nil)
	tx.EXPECT().LevelsByGroup(gomock.Any(), groupID).Return(levels, nil)
	tx.EXPECT().StoreUserLevel(gomock.Any(), gomock.Any()).Return(false, nil)
	tx.EXPECT().BadgesByGroup(gomock.Any(), groupID, true).Return(nil, nil)

	progress, err := g.OnPointsEarnedTx(context.Background(), tx, groupID, userID)
	require.NoError(t, err)
	// reaching a level twice is not reported again
	require.Nil(t, progress.Level)
}

func TestGamification_OnPointsEarnedTx_Badges(t *testing.T) {
	ctrl, _, g := newTestGamification(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())

	points := domain.Badge{ID: domain.BadgeID(uuid.New()), Condition: domain.BadgeOnPoints, Threshold: 100}
	completions := domain.Badge{ID: domain.BadgeID(uuid.New()), Condition: domain.BadgeOnCompletions, Threshold: 10}
	streak := domain.Badge{ID: domain.BadgeID(uuid.New()), Condition: domain.BadgeOnStreak, Threshold: 3}

	tx.EXPECT().Account(gomock.Any(), groupID, userID).Return(&domain.Account{Earned: 150}, nil)
	tx.EXPECT().LevelsByGroup(gomock.Any(), groupID).Return(nil, nil)
	tx.EXPECT().BadgesByGroup(gomock.Any(), groupID, true).
		Return([]domain.Badge{points, completions, streak}, nil)

	// points badge: 150 earned >= 100, newly awarded
	tx.EXPECT().StoreUserBadge(gomock.Any(), domain.UserBadge{
		BadgeID: points.ID, UserID: userID, GroupID: groupID,
	}).Return(true, nil)

	// completions badge: 4 approved < 10, not met
	tx.EXPECT().ApprovedCompletionCount(gomock.Any(), groupID, userID).Return(int64(4), nil)

	// streak badge: three consecutive days ending at the newest entry
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tx.EXPECT().ApprovedCompletionDays(gomock.Any(), groupID, userID, gomock.Any()).
		Return([]time.Time{
			today,
			today.Add(-24 * time.Hour),
			today.Add(-48 * time.Hour),
			today.Add(-96 * time.Hour), // gap, the streak stops at 3
		}, nil)
	tx.EXPECT().StoreUserBadge(gomock.Any(), domain.UserBadge{
		BadgeID: streak.ID, UserID: userID, GroupID: groupID,
	}).Return(true, nil)

	progress, err := g.OnPointsEarnedTx(context.Background(), tx, groupID, userID)
	require.NoError(t, err)
	require.Len(t, progress.Badges, 2)
	require.Equal(t, points.ID, progress.Badges[0].ID)
	require.Equal(t, streak.ID, progress.Badges[1].ID)
}

func TestGamification_OnPointsEarnedTx_AlreadyAwardedBadge(t *testing.T) {
	ctrl, _, g := newTestGamification(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	badge := domain.Badge{ID: domain.BadgeID(uuid.New()), Condition: domain.BadgeOnPoints, Threshold: 100}

	tx.EXPECT().Account(gomock.Any(), groupID, userID).Return(&domain.Account{Earned: 150}, nil)
	tx.EXPECT().LevelsByGroup(gomock.Any(), groupID).Return(nil, nil)
	tx.EXPECT().BadgesByGroup(gomock.Any(), groupID, true).Return([]domain.Badge{badge}, nil)
	tx.EXPECT().StoreUserBadge(gomock.Any(), gomock.Any()).Return(false, nil)

	progress, err := g.OnPointsEarnedTx(context.Background(), tx, groupID, userID)
	require.NoError(t, err)
	require.Empty(t, progress.Badges)
}

func TestGamification_OnPointsEarnedTx_NoAccount(t *testing.T) {
	ctrl, _, g := newTestGamification(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())

	tx.EXPECT().Account(gomock.Any(), groupID, userID).Return(nil, nil)

	progress, err := g.OnPointsEarnedTx(context.Background(), tx, groupID, userID)
	require.NoError(t, err)
	require.Nil(t, progress.Level)
	require.Empty(t, progress.Badges)
}
