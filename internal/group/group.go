package group

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// invitationCodeBytes is the entropy of generated invitation codes.
const invitationCodeBytes = 10

// Options configure invitation issuance.
type Options struct {
	// InvitationTTL is the lifetime of generated invitation codes.
	InvitationTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		InvitationTTL: cfg.Auth.InvitationTTL,
	}
}

// groups is the concrete implementation of the Groups interface.
type groups struct {
	options  Options
	storage  storage.Storage
	bonus    bonus.Bonus
	notifier notification.Notifier
}

// Create creates the group, the owner membership and the owner's bonus
// account in one transaction.
func (g groups) Create(ctx context.Context, creatorID domain.UserID, input CreateInput) (*domain.Group, error) {
	if input.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "group name is required")
	}
	if input.Type == "" {
		input.Type = domain.GroupTypeOther
	}
	if input.Currency == "" {
		input.Currency = domain.DefaultCurrency
	}

	var group *domain.Group
	if err := g.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreGroup(ctx, domain.Group{
			Name:           input.Name,
			Description:    input.Description,
			Type:           input.Type,
			Currency:       input.Currency,
			AllowProposals: input.AllowProposals,
			CreatedBy:      creatorID,
		})
		if err != nil {
			return fmt.Errorf("could not store group: %w", err)
		}
		group = stored

		if _, err := tx.StoreMembership(ctx, domain.Membership{
			GroupID: group.ID,
			UserID:  creatorID,
			Role:    domain.GroupRoleOwner,
		}); err != nil {
			return fmt.Errorf("could not store owner membership: %w", err)
		}

		if _, err := g.bonus.EnsureAccountTx(ctx, tx, *group, creatorID); err != nil {
			return fmt.Errorf("could not create owner account: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create group: %w", err)
	}

	return group, nil
}

func (g groups) Group(ctx context.Context, userID domain.UserID, groupID domain.GroupID) (*domain.Group, error) {
	if _, err := g.RequireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	group, err := g.storage.GroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch group: %w", err)
	}
	if group == nil {
		return nil, serrors.With(serrors.ErrNotFound, "group not found")
	}

	return group, nil
}

func (g groups) Update(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	updates storage.GroupUpdates) (*domain.Group, error) {
	if _, err := g.RequireAdmin(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	group, err := g.storage.UpdateGroupByID(ctx, groupID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update group: %w", err)
	}
	if group == nil {
		return nil, serrors.With(serrors.ErrNotFound, "group not found")
	}

	return group, nil
}

// Delete soft-deletes the group. Only the owner may delete it.
func (g groups) Delete(ctx context.Context, actorID domain.UserID, groupID domain.GroupID) error {
	membership, err := g.RequireMember(ctx, groupID, actorID)
	if err != nil {
		return err
	}
	if membership.Role != domain.GroupRoleOwner {
		return serrors.With(serrors.ErrForbidden, "only the owner can delete a group")
	}

	group, err := g.storage.DeleteGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("could not delete group: %w", err)
	}
	if group == nil {
		return serrors.With(serrors.ErrNotFound, "group not found")
	}

	return nil
}

// UserGroups returns a page of the user's groups. It supports cursor-based
// pagination using an RFC3339 timestamp string.
func (g groups) UserGroups(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Group, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := g.storage.GroupsByUser(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user groups: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Groups, next, nil
}

func (g groups) Members(ctx context.Context, actorID domain.UserID, groupID domain.GroupID) ([]storage.GroupMember, error) {
	if _, err := g.RequireMember(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	members, err := g.storage.GroupMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not list group members: %w", err)
	}

	return members, nil
}

// ChangeRole changes a member's role. Demoting the last administrator is
// rejected so the group never ends up unmanageable.
func (g groups) ChangeRole(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	userID domain.UserID,
	role domain.GroupRole) (*domain.Membership, error) {
	if _, err := g.RequireAdmin(ctx, groupID, actorID); err != nil {
		return nil, err
	}
	if role == domain.GroupRoleOwner {
		return nil, serrors.With(serrors.ErrBadRequest, "ownership cannot be granted through role change")
	}

	target, err := g.storage.Membership(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch membership: %w", err)
	}
	if target == nil {
		return nil, serrors.With(serrors.ErrNotFound, "member not found")
	}
	if target.Role == domain.GroupRoleOwner {
		return nil, serrors.With(serrors.ErrForbidden, "the owner's role cannot be changed")
	}

	if target.Role.CanAdminister() && !role.CanAdminister() {
		if err := g.requireNotLastAdmin(ctx, groupID); err != nil {
			return nil, err
		}
	}

	updated, err := g.storage.UpdateMembershipRole(ctx, groupID, userID, role)
	if err != nil {
		return nil, fmt.Errorf("could not update membership role: %w", err)
	}

	return updated, nil
}

// RemoveMember removes a member from the group. Members may remove
// themselves (leave); removing others requires an administrative role. The
// last administrator can do neither.
func (g groups) RemoveMember(ctx context.Context, actorID domain.UserID, groupID domain.GroupID, userID domain.UserID) error {
	if actorID != userID {
		if _, err := g.RequireAdmin(ctx, groupID, actorID); err != nil {
			return err
		}
	}

	target, err := g.storage.Membership(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("could not fetch membership: %w", err)
	}
	if target == nil {
		return serrors.With(serrors.ErrNotFound, "member not found")
	}

	if target.Role.CanAdminister() {
		if err := g.requireNotLastAdmin(ctx, groupID); err != nil {
			return err
		}
	}

	if _, err := g.storage.DeleteMembership(ctx, groupID, userID); err != nil {
		return fmt.Errorf("could not delete membership: %w", err)
	}

	return nil
}

// Invite generates a single-use invitation code.
func (g groups) Invite(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	role domain.GroupRole) (*domain.Invitation, error) {
	if _, err := g.RequireAdmin(ctx, groupID, actorID); err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.GroupRoleMember
	}
	if role == domain.GroupRoleOwner {
		return nil, serrors.With(serrors.ErrBadRequest, "cannot invite an owner")
	}

	code, err := newInvitationCode()
	if err != nil {
		return nil, err
	}

	invitation, err := g.storage.StoreInvitation(ctx, domain.Invitation{
		GroupID:   groupID,
		Code:      code,
		Role:      role,
		CreatedBy: actorID,
		ExpiresAt: time.Now().Add(g.options.InvitationTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store invitation: %w", err)
	}

	return invitation, nil
}

// Join consumes an invitation code: the code is marked used, the membership
// and bonus account are created and the group admins are notified, all in
// one transaction.
func (g groups) Join(ctx context.Context, userID domain.UserID, code string) (*domain.Group, error) {
	invitation, err := g.storage.InvitationByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not fetch invitation: %w", err)
	}
	now := time.Now()
	if invitation == nil || !invitation.Usable(now) {
		return nil, serrors.With(serrors.ErrBadRequest, "invitation code is invalid or expired")
	}

	group, err := g.storage.GroupByID(ctx, invitation.GroupID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch group: %w", err)
	}
	if group == nil {
		return nil, serrors.With(serrors.ErrNotFound, "group not found")
	}

	user, err := g.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	if err := g.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		used, err := tx.MarkInvitationUsed(ctx, invitation.ID, userID, now)
		if err != nil {
			return fmt.Errorf("could not mark invitation used: %w", err)
		}
		if used == nil {
			return serrors.With(serrors.ErrConflict, "invitation code was already used")
		}

		if _, err := tx.StoreMembership(ctx, domain.Membership{
			GroupID: group.ID,
			UserID:  userID,
			Role:    invitation.Role,
		}); err != nil {
			return fmt.Errorf("could not store membership: %w", err)
		}

		if _, err := g.bonus.EnsureAccountTx(ctx, tx, *group, userID); err != nil {
			return fmt.Errorf("could not create account: %w", err)
		}

		return g.notifier.NotifyTx(ctx, tx, domain.Notification{
			UserID:  invitation.CreatedBy,
			Type:    domain.NotificationMemberJoined,
			Title:   fmt.Sprintf("%s joined %s", user.DisplayName, group.Name),
			GroupID: &group.ID,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not join group: %w", err)
	}

	return group, nil
}

func (g groups) RequireMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error) {
	membership, err := g.storage.Membership(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch membership: %w", err)
	}
	if membership == nil {
		return nil, serrors.With(serrors.ErrForbidden, "not a member of the group")
	}

	return membership, nil
}

func (g groups) RequireAdmin(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error) {
	membership, err := g.RequireMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !membership.Role.CanAdminister() {
		return nil, serrors.With(serrors.ErrForbidden, "administrative role required")
	}

	return membership, nil
}

// requireNotLastAdmin rejects the operation when the group has a single
// administrator left.
func (g groups) requireNotLastAdmin(ctx context.Context, groupID domain.GroupID) error {
	count, err := g.storage.AdminCount(ctx, groupID)
	if err != nil {
		return fmt.Errorf("could not count group admins: %w", err)
	}
	if count <= 1 {
		return serrors.With(serrors.ErrConflict, "cannot remove the last administrator of a group")
	}

	return nil
}

// newInvitationCode generates a short random code in Crockford-ish base32.
func newInvitationCode() (string, error) {
	buf := make([]byte, invitationCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate invitation code: %w", err)
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// New creates a new Groups instance backed by the provided storage and
// collaborating services.
func New(storage storage.Storage, bonus bonus.Bonus, notifier notification.Notifier, options Options) Groups {
	return &groups{
		options:  options,
		storage:  storage,
		bonus:    bonus,
		notifier: notifier,
	}
}
