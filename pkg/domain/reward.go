package domain

import (
	"time"

	"github.com/google/uuid"
)

// RewardID uniquely identifies a reward.
type RewardID uuid.UUID

// RedemptionID uniquely identifies a reward redemption.
type RedemptionID uuid.UUID

// Reward is an item in a group's catalog that members buy with bonus points.
type Reward struct {
	ID      RewardID `json:"id"`
	GroupID GroupID  `json:"groupId"`

	// Name is unique within the group.
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Cost is the price in group currency; always positive.
	Cost int64 `json:"cost"`

	// Stock limits the total number of redemptions; nil means unlimited.
	Stock *int `json:"stock,omitempty"`
	// PerUserLimit limits redemptions per user; nil means unlimited.
	PerUserLimit *int `json:"perUserLimit,omitempty"`

	Active bool `json:"active"`

	// ValidFrom/ValidUntil bound the redemption window; zero means unbounded.
	ValidFrom  time.Time `json:"validFrom,omitzero"`
	ValidUntil time.Time `json:"validUntil,omitzero"`

	CreatedBy UserID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Available reports whether the reward can be redeemed at the given time,
// ignoring stock and per-user limits which require queries.
func (r Reward) Available(now time.Time) bool {
	if !r.Active || !r.DeletedAt.IsZero() {
		return false
	}
	if !r.ValidFrom.IsZero() && now.Before(r.ValidFrom) {
		return false
	}
	if !r.ValidUntil.IsZero() && now.After(r.ValidUntil) {
		return false
	}

	return true
}

// Redemption records one purchase of a reward.
type Redemption struct {
	ID       RedemptionID `json:"id"`
	RewardID RewardID     `json:"rewardId"`
	GroupID  GroupID      `json:"groupId"`
	UserID   UserID       `json:"userId"`

	// Spent is the total points debited for this redemption.
	Spent int64 `json:"spent"`

	CreatedAt time.Time `json:"createdAt"`
}
