package group

import (
	"context"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

// CreateInput carries the fields accepted when creating a group.
type CreateInput struct {
	Name           string
	Description    string
	Type           domain.GroupType
	Currency       string
	AllowProposals bool
}

//go:generate mockgen -package mockgroup -source=interface.go -destination=mock/mockgroup.go *
type Groups interface {
	// Create creates a group; the creator becomes its owner and gets a bonus
	// account.
	Create(ctx context.Context, creatorID domain.UserID, input CreateInput) (*domain.Group, error)
	// Group fetches a group the user is a member of.
	Group(ctx context.Context, userID domain.UserID, groupID domain.GroupID) (*domain.Group, error)
	// Update modifies group settings; requires an administrative role.
	Update(ctx context.Context, actorID domain.UserID, groupID domain.GroupID, updates storage.GroupUpdates) (*domain.Group, error)
	// Delete soft-deletes a group; only the owner may do this.
	Delete(ctx context.Context, actorID domain.UserID, groupID domain.GroupID) error
	// UserGroups returns a page of the user's groups with an RFC3339 cursor.
	UserGroups(ctx context.Context, userID domain.UserID, cursor string, limit uint) ([]domain.Group, string, error)

	// Members lists the group's members; requires membership.
	Members(ctx context.Context, actorID domain.UserID, groupID domain.GroupID) ([]storage.GroupMember, error)
	// ChangeRole changes a member's role; requires an administrative role and
	// protects the last administrator.
	ChangeRole(ctx context.Context,
		actorID domain.UserID,
		groupID domain.GroupID,
		userID domain.UserID,
		role domain.GroupRole) (*domain.Membership, error)
	// RemoveMember removes a member (or lets a member leave); the last
	// administrator cannot be removed.
	RemoveMember(ctx context.Context, actorID domain.UserID, groupID domain.GroupID, userID domain.UserID) error

	// Invite creates a single-use invitation code; requires an administrative
	// role.
	Invite(ctx context.Context, actorID domain.UserID, groupID domain.GroupID, role domain.GroupRole) (*domain.Invitation, error)
	// Join consumes an invitation code, adds the user as a member and creates
	// their bonus account.
	Join(ctx context.Context, userID domain.UserID, code string) (*domain.Group, error)

	// RequireMember returns the caller's membership or ErrForbidden.
	RequireMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error)
	// RequireAdmin returns the caller's membership when it carries an
	// administrative role, or ErrForbidden.
	RequireAdmin(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error)
}
