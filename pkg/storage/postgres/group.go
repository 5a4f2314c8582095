package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

const (
	groupsTable      = "groups"
	membershipsTable = "memberships"
	invitationsTable = "invitations"
)

func (p *PgSQL) StoreGroup(ctx context.Context, group domain.Group) (*domain.Group, error) {
	var pgGroup PgGroup
	pgGroup.FromDomain(group)

	var row PgGroup
	found, err := p.Builder.Insert(groupsTable).
		Rows(pgGroup).
		Returning(&PgGroup{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store group into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store group into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) GroupByID(ctx context.Context, id domain.GroupID) (*domain.Group, error) {
	var row PgGroup
	found, err := p.Builder.From(groupsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch group by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateGroupByID updates a single group with provided fields. Only non-nil
// fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateGroupByID(ctx context.Context, id domain.GroupID, updates storage.GroupUpdates) (*domain.Group, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}
	if updates.Currency != nil {
		rec["currency"] = *updates.Currency
	}
	if updates.AllowProposals != nil {
		rec["allow_proposals"] = *updates.AllowProposals
	}

	var row PgGroup
	found, err := p.Builder.Update(groupsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgGroup{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update group in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteGroup performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteGroup(ctx context.Context, id domain.GroupID) (*domain.Group, error) {
	var row PgGroup
	found, err := p.Builder.Update(groupsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgGroup{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete group in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// GroupsByUser returns a page of groups the user belongs to, ordered by the
// user's join time descending. The cursor is the joined_at of the last row of
// the previous page.
func (p *PgSQL) GroupsByUser(ctx context.Context,
	userID domain.UserID,
	cursor time.Time,
	limit uint) (storage.UserGroups, error) {
	w := []goqu.Expression{
		goqu.I("m.user_id").Eq(uuid.UUID(userID)),
		goqu.I("g.deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("m.joined_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(goqu.T(groupsTable).As("g")).
		Join(goqu.T(membershipsTable).As("m"), goqu.On(goqu.I("m.group_id").Eq(goqu.I("g.id")))).
		Select(goqu.I("g.*"), goqu.I("m.joined_at").As("m_joined_at")).
		Where(w...).
		Order(goqu.I("m.joined_at").Desc(), goqu.I("g.id").Desc()).
		Limit(fetch)

	var rows []struct {
		PgGroup
		MemberJoinedAt time.Time `db:"m_joined_at"`
	}
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserGroups{}, fmt.Errorf("could not fetch user groups from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].MemberJoinedAt
		rows = trimmed
	}

	groups := make([]domain.Group, 0, len(rows))
	for i := range rows {
		groups = append(groups, *rows[i].ToDomain())
	}

	return storage.UserGroups{
		Groups:     groups,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) StoreMembership(ctx context.Context, m domain.Membership) (*domain.Membership, error) {
	var pgMembership PgMembership
	pgMembership.FromDomain(m)

	var row PgMembership
	found, err := p.Builder.Insert(membershipsTable).
		Rows(pgMembership).
		Returning(&PgMembership{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "user is already a member of the group")
		}

		return nil, fmt.Errorf("could not store membership into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store membership into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Membership(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error) {
	var row PgMembership
	found, err := p.Builder.From(membershipsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch membership: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// GroupMembers lists the members of a group together with their public
// profile columns, ordered by join time ascending.
func (p *PgSQL) GroupMembers(ctx context.Context, groupID domain.GroupID) ([]storage.GroupMember, error) {
	var rows []PgGroupMember
	if err := p.Builder.From(goqu.T(membershipsTable).As("m")).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("m.user_id")))).
		Select(goqu.I("m.*"), goqu.I("u.email").As("email"), goqu.I("u.display_name").As("display_name")).
		Where(
			goqu.I("m.group_id").Eq(uuid.UUID(groupID)),
			goqu.I("u.deleted_at").IsNull(),
		).
		Order(goqu.I("m.joined_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch group members from pg: %w", err)
	}

	out := make([]storage.GroupMember, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToStorage())
	}

	return out, nil
}

func (p *PgSQL) UpdateMembershipRole(ctx context.Context,
	groupID domain.GroupID,
	userID domain.UserID,
	role domain.GroupRole) (*domain.Membership, error) {
	var row PgMembership
	found, err := p.Builder.Update(membershipsTable).
		Set(goqu.Record{
			"role": string(role),
		}).Where(
		goqu.I("group_id").Eq(uuid.UUID(groupID)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	).Returning(&PgMembership{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update membership role in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteMembership(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Membership, error) {
	var row PgMembership
	found, err := p.Builder.From(membershipsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch membership for delete: %w", err)
	}
	if !found {
		return nil, nil
	}

	if _, err := p.DB.ExecContext(ctx,
		"DELETE FROM "+membershipsTable+" WHERE group_id = $1 AND user_id = $2",
		uuid.UUID(groupID), uuid.UUID(userID)); err != nil {
		return nil, fmt.Errorf("could not delete membership in pg: %w", err)
	}

	return row.ToDomain(), nil
}

// AdminCount counts members holding an administrative role in the group.
func (p *PgSQL) AdminCount(ctx context.Context, groupID domain.GroupID) (int64, error) {
	count, err := p.Builder.From(membershipsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("role").In(string(domain.GroupRoleOwner), string(domain.GroupRoleAdmin)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count group admins in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) StoreInvitation(ctx context.Context, inv domain.Invitation) (*domain.Invitation, error) {
	var pgInv PgInvitation
	pgInv.FromDomain(inv)

	var row PgInvitation
	found, err := p.Builder.Insert(invitationsTable).
		Rows(pgInv).
		Returning(&PgInvitation{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "invitation code collision")
		}

		return nil, fmt.Errorf("could not store invitation into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store invitation into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) InvitationByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	var row PgInvitation
	found, err := p.Builder.From(invitationsTable).
		Where(goqu.I("code").Eq(code)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch invitation by code: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkInvitationUsed consumes an invitation. The used_by IS NULL guard makes
// the update a no-op when another join already consumed the code.
func (p *PgSQL) MarkInvitationUsed(ctx context.Context,
	id domain.InvitationID,
	usedBy domain.UserID,
	at time.Time) (*domain.Invitation, error) {
	var row PgInvitation
	found, err := p.Builder.Update(invitationsTable).
		Set(goqu.Record{
			"used_by": uuid.UUID(usedBy),
			"used_at": at,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("used_by").IsNull(),
	).Returning(&PgInvitation{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark invitation used in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
