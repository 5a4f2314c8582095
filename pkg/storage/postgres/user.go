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
	usersTable         = "users"
	refreshTokensTable = "refresh_tokens"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(user)

	var row PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(pgUser).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email %q is already registered", user.Email)
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("email").Eq(email),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUserByID updates a single user with provided fields. Only non-nil
// fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateUserByID(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.DisplayName != nil {
		rec["display_name"] = *updates.DisplayName
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}
	if updates.State != "" {
		rec["state"] = string(updates.State)
	}
	if updates.Role != "" {
		rec["role"] = string(updates.Role)
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgUser{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteUser performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgUser{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreRefreshToken(ctx context.Context, token domain.RefreshToken) (*domain.RefreshToken, error) {
	var pgToken PgRefreshToken
	pgToken.FromDomain(token)

	var row PgRefreshToken
	found, err := p.Builder.Insert(refreshTokensTable).
		Rows(pgToken).
		Returning(&PgRefreshToken{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store refresh token into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store refresh token into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RefreshTokenByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var row PgRefreshToken
	found, err := p.Builder.From(refreshTokensTable).
		Where(goqu.I("token_hash").Eq(hash)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch refresh token by hash: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RevokeRefreshToken(ctx context.Context, id domain.RefreshTokenID, at time.Time) error {
	_, err := p.Builder.Update(refreshTokensTable).
		Set(goqu.Record{
			"revoked_at": at,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("revoked_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not revoke refresh token in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) RevokeUserRefreshTokens(ctx context.Context, userID domain.UserID, at time.Time) (int64, error) {
	res, err := p.Builder.Update(refreshTokensTable).
		Set(goqu.Record{
			"revoked_at": at,
		}).Where(
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("revoked_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not revoke user refresh tokens in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}
