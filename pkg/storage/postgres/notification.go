package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

const (
	notificationsTable = "notifications"
)

func (p *PgSQL) StoreNotifications(ctx context.Context, notifications ...domain.Notification) ([]domain.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	pgNotifications := domainNotificationsToPg(notifications)

	var result []PgNotification
	if err := p.Builder.Insert(notificationsTable).
		Rows(pgNotifications).
		Returning(&PgNotification{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store notifications into pg: %w", err)
	}

	return pgNotificationsToDomain(result), nil
}

func (p *PgSQL) NotificationByID(ctx context.Context, id domain.NotificationID) (*domain.Notification, error) {
	var row PgNotification
	found, err := p.Builder.From(notificationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch notification by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// NotificationsByUser returns a page of notifications for a user, ordered by
// created_at DESC, id DESC.
func (p *PgSQL) NotificationsByUser(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	cursor time.Time,
	limit uint) (storage.UserNotifications, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if unreadOnly {
		w = append(w, goqu.I("read_at").IsNull())
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgNotification
	if err := p.Builder.From(notificationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserNotifications{}, fmt.Errorf("could not fetch user notifications from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserNotifications{
		Notifications: pgNotificationsToDomain(rows),
		NextCursor:    nextCursor,
	}, nil
}

// MarkNotificationsRead stamps unread notifications of the user as read,
// returning the number of affected rows.
func (p *PgSQL) MarkNotificationsRead(ctx context.Context,
	userID domain.UserID,
	at time.Time,
	ids ...domain.NotificationID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, uuid.UUID(id))
	}

	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{
			"read_at": at,
		}).Where(
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("id").In(rawIDs),
		goqu.I("read_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}

func (p *PgSQL) UnreadNotificationCount(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(notificationsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("read_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count unread notifications in pg: %w", err)
	}

	return count, nil
}
