package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

func TestPgSQL_Memberships(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	member := createTestUser(t, pgSQL, "member")
	group := createTestGroup(t, pgSQL, owner)

	_, err := pgSQL.StoreMembership(ctx, domain.Membership{
		GroupID: group.ID,
		UserID:  member.ID,
		Role:    domain.GroupRoleMember,
	})
	require.NoError(t, err)

	t.Run("duplicate membership conflicts", func(t *testing.T) {
		_, err := pgSQL.StoreMembership(ctx, domain.Membership{
			GroupID: group.ID,
			UserID:  member.ID,
			Role:    domain.GroupRoleMember,
		})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("members include profile fields", func(t *testing.T) {
		members, err := pgSQL.GroupMembers(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		// ordered by join time ascending, owner first
		require.Equal(t, owner.ID, members[0].UserID)
		require.Equal(t, owner.DisplayName, members[0].DisplayName)
		require.Equal(t, member.Email, members[1].Email)
	})

	t.Run("admin count", func(t *testing.T) {
		count, err := pgSQL.AdminCount(ctx, group.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)

		_, err = pgSQL.UpdateMembershipRole(ctx, group.ID, member.ID, domain.GroupRoleAdmin)
		require.NoError(t, err)

		count, err = pgSQL.AdminCount(ctx, group.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, count)
	})

	t.Run("delete membership", func(t *testing.T) {
		deleted, err := pgSQL.DeleteMembership(ctx, group.ID, member.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)

		got, err := pgSQL.Membership(ctx, group.ID, member.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_GroupsByUser_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := createTestUser(t, pgSQL, "joiner")
	for range 3 {
		createTestGroup(t, pgSQL, user)
	}

	p1, err := pgSQL.GroupsByUser(ctx, user.ID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Groups, 2)
	require.NotNil(t, p1.NextCursor)

	p2, err := pgSQL.GroupsByUser(ctx, user.ID, *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Groups, 1)
	require.Nil(t, p2.NextCursor)
}

func TestPgSQL_UpdateGroupByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)

	name := "renamed"
	allow := true
	updated, err := pgSQL.UpdateGroupByID(ctx, group.ID, storage.GroupUpdates{
		Name:           &name,
		AllowProposals: &allow,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "renamed", updated.Name)
	require.True(t, updated.AllowProposals)
	// untouched fields survive
	require.Equal(t, group.Currency, updated.Currency)

	t.Run("soft delete", func(t *testing.T) {
		deleted, err := pgSQL.DeleteGroup(ctx, group.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)

		got, err := pgSQL.GroupByID(ctx, group.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_Invitations(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	invitee := createTestUser(t, pgSQL, "invitee")
	group := createTestGroup(t, pgSQL, owner)

	inv, err := pgSQL.StoreInvitation(ctx, domain.Invitation{
		GroupID:   group.ID,
		Code:      "JOINCODE42",
		Role:      domain.GroupRoleMember,
		CreatedBy: owner.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, inv)

	got, err := pgSQL.InvitationByCode(ctx, "JOINCODE42")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Usable(time.Now()))

	t.Run("mark used consumes the code once", func(t *testing.T) {
		used, err := pgSQL.MarkInvitationUsed(ctx, inv.ID, invitee.ID, time.Now())
		require.NoError(t, err)
		require.NotNil(t, used)
		require.NotNil(t, used.UsedBy)
		require.Equal(t, invitee.ID, *used.UsedBy)

		// a second consumer loses the race
		again, err := pgSQL.MarkInvitationUsed(ctx, inv.ID, owner.ID, time.Now())
		require.NoError(t, err)
		require.Nil(t, again)
	})
}
