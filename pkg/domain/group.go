package domain

import (
	"time"

	"github.com/google/uuid"
)

// GroupID uniquely identifies a group.
type GroupID uuid.UUID

// InvitationID uniquely identifies a group invitation.
type InvitationID uuid.UUID

// GroupRole is the role of a member inside a group.
type GroupRole string

const (
	// GroupRoleOwner is the creator of the group with full control.
	GroupRoleOwner GroupRole = "OWNER"
	// GroupRoleAdmin can manage members, tasks, rules and rewards.
	GroupRoleAdmin GroupRole = "ADMIN"
	// GroupRoleMember is a regular participant.
	GroupRoleMember GroupRole = "MEMBER"
)

// CanAdminister reports whether the role is allowed to perform group
// administration (reviewing completions, managing rules and rewards).
func (r GroupRole) CanAdminister() bool {
	return r == GroupRoleOwner || r == GroupRoleAdmin
}

// GroupType categorizes a group.
type GroupType string

const (
	GroupTypeFamily       GroupType = "FAMILY"
	GroupTypeDepartment   GroupType = "DEPARTMENT"
	GroupTypeOrganization GroupType = "ORGANIZATION"
	GroupTypeCommunity    GroupType = "COMMUNITY"
	GroupTypeOther        GroupType = "OTHER"
)

// DefaultCurrency is the currency name used when a group does not configure
// its own.
const DefaultCurrency = "points"

// Group is a circle of users sharing tasks, a bonus currency and rewards.
type Group struct {
	ID GroupID `json:"id"`

	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        GroupType `json:"type"`

	// Currency is the display name of the group's bonus currency.
	Currency string `json:"currency"`
	// AllowProposals lets regular members propose tasks for admin approval.
	AllowProposals bool `json:"allowProposals"`

	// CreatedBy is the user who created the group (its initial owner).
	CreatedBy UserID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Membership ties a user to a group with a role.
type Membership struct {
	GroupID GroupID   `json:"groupId"`
	UserID  UserID    `json:"userId"`
	Role    GroupRole `json:"role"`

	JoinedAt time.Time `json:"joinedAt"`
}

// Invitation is a single-use code that lets a user join a group.
type Invitation struct {
	ID      InvitationID `json:"id"`
	GroupID GroupID      `json:"groupId"`

	// Code is the opaque invitation code shared with the invitee.
	Code string `json:"code"`
	// Role the invitee will receive upon accepting.
	Role GroupRole `json:"role"`

	CreatedBy UserID    `json:"createdBy"`
	ExpiresAt time.Time `json:"expiresAt"`

	// UsedBy and UsedAt are set once the invitation has been accepted.
	UsedBy *UserID   `json:"usedBy,omitempty"`
	UsedAt time.Time `json:"usedAt,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
}

// Usable reports whether the invitation can still be accepted at the given time.
func (i Invitation) Usable(now time.Time) bool {
	return i.UsedBy == nil && now.Before(i.ExpiresAt)
}
