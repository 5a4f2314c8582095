package domain

import (
	"time"

	"github.com/google/uuid"
)

// LevelID uniquely identifies a level definition.
type LevelID uuid.UUID

// BadgeID uniquely identifies a badge definition.
type BadgeID uuid.UUID

// Level is a named milestone in a group, reached by lifetime earned points.
type Level struct {
	ID      LevelID `json:"id"`
	GroupID GroupID `json:"groupId"`

	Name string `json:"name"`
	// Rank orders levels; the level with the highest rank whose
	// RequiredPoints is covered by the user's lifetime earned points is the
	// user's current level.
	Rank int `json:"rank"`
	// RequiredPoints is the lifetime earned total needed to reach this level.
	RequiredPoints int64 `json:"requiredPoints"`

	CreatedAt time.Time `json:"createdAt"`
	DeletedAt time.Time `json:"-"`
}

// UserLevel records that a user reached a level (level history).
type UserLevel struct {
	UserID  UserID  `json:"userId"`
	GroupID GroupID `json:"groupId"`
	LevelID LevelID `json:"levelId"`

	AchievedAt time.Time `json:"achievedAt"`
}

// BadgeCondition is the metric a badge threshold applies to.
type BadgeCondition string

const (
	// BadgeOnCompletions awards when the user's approved completions in the
	// group reach the threshold.
	BadgeOnCompletions BadgeCondition = "COMPLETIONS"
	// BadgeOnPoints awards when lifetime earned points reach the threshold.
	BadgeOnPoints BadgeCondition = "POINTS"
	// BadgeOnStreak awards when the user completes tasks on the threshold
	// number of consecutive days.
	BadgeOnStreak BadgeCondition = "STREAK"
)

// Badge is an achievement awarded at most once per user.
type Badge struct {
	ID      BadgeID `json:"id"`
	GroupID GroupID `json:"groupId"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Condition BadgeCondition `json:"condition"`
	Threshold int64          `json:"threshold"`

	Active bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	DeletedAt time.Time `json:"-"`
}

// UserBadge records a badge award.
type UserBadge struct {
	BadgeID BadgeID `json:"badgeId"`
	UserID  UserID  `json:"userId"`
	GroupID GroupID `json:"groupId"`

	AwardedAt time.Time `json:"awardedAt"`
}

// RatingPeriod selects the ledger window a leaderboard is computed over.
type RatingPeriod string

const (
	RatingPeriodWeek    RatingPeriod = "LAST_7_DAYS"
	RatingPeriodMonth   RatingPeriod = "LAST_30_DAYS"
	RatingPeriodAllTime RatingPeriod = "ALL_TIME"
)

// Since returns the start of the window relative to now; the zero time means
// unbounded.
func (p RatingPeriod) Since(now time.Time) time.Time {
	switch p {
	case RatingPeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case RatingPeriodMonth:
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}

// LeaderboardEntry is one row of a group leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID UserID `json:"userId"`
	// DisplayName is denormalized for rendering convenience.
	DisplayName string `json:"displayName"`
	// Points is the sum of credits in the selected period.
	Points int64 `json:"points"`
}

// RatingSnapshot is a persisted daily standing, written by the snapshot
// worker so historical leaderboards survive ledger compaction.
type RatingSnapshot struct {
	GroupID GroupID      `json:"groupId"`
	UserID  UserID       `json:"userId"`
	Period  RatingPeriod `json:"period"`
	Points  int64        `json:"points"`
	Rank    int          `json:"rank"`

	TakenAt time.Time `json:"takenAt"`
}
