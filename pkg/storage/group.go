package storage

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
)

// GroupUpdates describes a set of optional fields that can be applied to an
// existing group during an update. Only non-nil fields will be updated.
type GroupUpdates struct {
	Name        *string
	Description *string
	Currency    *string
	// AllowProposals, when provided, toggles whether plain members may create
	// task proposals.
	AllowProposals *bool
}

// UserGroups groups a page of groups returned for a user together with an
// optional NextCursor used for pagination.
type UserGroups struct {
	Groups []domain.Group
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// GroupMember is a membership row joined with the member's public profile
// fields, as rendered in member listings.
type GroupMember struct {
	domain.Membership

	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// GroupStorage defines persistence operations for groups, memberships and
// invitation codes.
type GroupStorage interface {
	// StoreGroup inserts a group and returns the stored row.
	StoreGroup(ctx context.Context, group domain.Group) (*domain.Group, error)
	// GroupByID fetches a group by ID, excluding soft-deleted records.
	// Returns nil when not found.
	GroupByID(ctx context.Context, ID domain.GroupID) (*domain.Group, error)
	// UpdateGroupByID applies the provided field set to a single group and
	// returns the updated row, or nil when the group does not exist.
	UpdateGroupByID(ctx context.Context, ID domain.GroupID, updates GroupUpdates) (*domain.Group, error)
	// DeleteGroup performs a soft delete and returns the deleted group, or nil
	// if it was not found.
	DeleteGroup(ctx context.Context, ID domain.GroupID) (*domain.Group, error)
	// GroupsByUser returns a page of groups the user is a member of, ordered by
	// join time descending.
	GroupsByUser(ctx context.Context, userID domain.UserID, cursor time.Time, limit uint) (UserGroups, error)

	// StoreMembership inserts a membership row. Returns serrors.ErrConflict
	// when the user is already a member.
	StoreMembership(ctx context.Context, m domain.Membership) (*domain.Membership, error)
	// Membership fetches a single membership. Returns nil when the user is not
	// a member of the group.
	Membership(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error)
	// GroupMembers returns all members of a group with their profile fields,
	// ordered by join time ascending.
	GroupMembers(ctx context.Context, groupID domain.GroupID) ([]GroupMember, error)
	// UpdateMembershipRole changes a member's role and returns the updated
	// membership, or nil when the membership does not exist.
	UpdateMembershipRole(ctx context.Context, groupID domain.GroupID, userID domain.UserID, role domain.GroupRole) (*domain.Membership, error)
	// DeleteMembership removes a member from a group and returns the deleted
	// membership, or nil if it was not found.
	DeleteMembership(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error)
	// AdminCount returns the number of members with an administrative role
	// (owner or admin) in the group. Used to protect the last administrator.
	AdminCount(ctx context.Context, groupID domain.GroupID) (int64, error)

	// StoreInvitation persists an invitation code.
	StoreInvitation(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error)
	// InvitationByCode fetches an invitation by its code. Returns nil when not
	// found.
	InvitationByCode(ctx context.Context, code string) (*domain.Invitation, error)
	// MarkInvitationUsed marks an invitation consumed by the given user. The
	// update only succeeds while the invitation is still unused, so concurrent
	// joins cannot consume the same code twice; returns nil when the code was
	// already used.
	MarkInvitationUsed(ctx context.Context, ID domain.InvitationID, usedBy domain.UserID, at time.Time) (*domain.Invitation, error)
}
