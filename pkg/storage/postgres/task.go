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
	tasksTable       = "tasks"
	completionsTable = "completions"
)

func (p *PgSQL) StoreTasks(ctx context.Context, tasks ...domain.Task) ([]domain.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	pgTasks := domainTasksToPg(tasks)

	var result []PgTask
	if err := p.Builder.Insert(tasksTable).
		Rows(pgTasks).
		Returning(&PgTask{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store tasks into pg: %w", err)
	}

	return pgTasksToDomain(result), nil
}

func (p *PgSQL) TaskByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.From(tasksTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch task by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateTaskByID updates a single task with provided fields. Only non-nil
// fields from updates are set; updated_at is set automatically. A FromStatus
// guard is compiled into the WHERE clause so the update matches zero rows
// when another writer changed the status first.
func (p *PgSQL) UpdateTaskByID(ctx context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}
	if updates.Priority != nil {
		rec["priority"] = string(*updates.Priority)
	}
	if updates.Points != nil {
		rec["points"] = *updates.Points
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.AssigneeID != nil {
		rec["assignee_id"] = nullID(*updates.AssigneeID)
	}
	if updates.DueAt != nil {
		rec["due_at"] = nullTime(*updates.DueAt)
	}
	if updates.LastSpawnedAt != nil {
		rec["last_spawned_at"] = *updates.LastSpawnedAt
	}

	where := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if updates.FromStatus != "" {
		where = append(where, goqu.I("status").Eq(string(updates.FromStatus)))
	}

	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(rec).Where(where...).
		Returning(&PgTask{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteTask performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteTask(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTask{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TasksByGroup returns a page of tasks in a group filtered by the optional
// filter and cursor, ordered by created_at DESC, id DESC.
func (p *PgSQL) TasksByGroup(ctx context.Context,
	groupID domain.GroupID,
	filter storage.TaskFilter,
	cursor time.Time,
	limit uint) (storage.GroupTasks, error) {
	w := []goqu.Expression{
		goqu.I("group_id").Eq(uuid.UUID(groupID)),
		goqu.I("deleted_at").IsNull(),
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("type").Eq(string(filter.Type)))
	}
	if filter.AssigneeID != nil {
		w = append(w, goqu.I("assignee_id").Eq(uuid.UUID(*filter.AssigneeID)))
	}
	if filter.TemplatesOnly {
		w = append(w, goqu.I("recurrence").Neq(string(domain.RecurrenceNone)))
	} else {
		w = append(w, goqu.I("recurrence").Eq(string(domain.RecurrenceNone)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgTask
	if err := p.Builder.From(tasksTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.GroupTasks{}, fmt.Errorf("could not fetch group tasks from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.GroupTasks{
		Tasks:      pgTasksToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DueTemplates returns recurring templates whose spawn interval elapsed since
// the last spawn and whose recurrence window is still open.
func (p *PgSQL) DueTemplates(ctx context.Context, now time.Time, limit uint) ([]domain.Task, error) {
	interval := goqu.Case().
		When(goqu.I("recurrence").Eq(string(domain.RecurrenceDaily)), goqu.L("INTERVAL '1 day'")).
		When(goqu.I("recurrence").Eq(string(domain.RecurrenceWeekly)), goqu.L("INTERVAL '7 days'")).
		Else(goqu.L("INTERVAL '1 month'"))

	var rows []PgTask
	if err := p.Builder.From(tasksTable).
		Where(
			goqu.I("recurrence").Neq(string(domain.RecurrenceNone)),
			goqu.I("deleted_at").IsNull(),
			goqu.Or(
				goqu.I("recur_end_at").IsNull(),
				goqu.I("recur_end_at").Gt(now),
			),
			goqu.Or(
				goqu.I("last_spawned_at").IsNull(),
				goqu.L("last_spawned_at + ?", interval).Lte(now),
			),
		).
		Order(goqu.I("created_at").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch due templates from pg: %w", err)
	}

	return pgTasksToDomain(rows), nil
}

// ExpireOverdueTasks marks open tasks whose due date passed as expired,
// returning the affected rows.
func (p *PgSQL) ExpireOverdueTasks(ctx context.Context, now time.Time) ([]domain.Task, error) {
	var rows []PgTask
	if err := p.Builder.Update(tasksTable).
		Set(goqu.Record{
			"status":     string(domain.TaskStatusExpired),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("status").Eq(string(domain.TaskStatusOpen)),
		goqu.I("recurrence").Eq(string(domain.RecurrenceNone)),
		goqu.I("due_at").IsNotNull(),
		goqu.I("due_at").Lt(now),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTask{}).Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not expire overdue tasks in pg: %w", err)
	}

	return pgTasksToDomain(rows), nil
}

// TasksDueWithin returns assigned in-progress tasks due inside
// (now, now+window], used to enqueue reminder notifications.
func (p *PgSQL) TasksDueWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.Task, error) {
	var rows []PgTask
	if err := p.Builder.From(tasksTable).
		Where(
			goqu.I("status").Eq(string(domain.TaskStatusInProgress)),
			goqu.I("assignee_id").IsNotNull(),
			goqu.I("due_at").IsNotNull(),
			goqu.I("due_at").Gt(now),
			goqu.I("due_at").Lte(now.Add(window)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("due_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tasks due within window from pg: %w", err)
	}

	return pgTasksToDomain(rows), nil
}

func (p *PgSQL) StoreCompletion(ctx context.Context, c domain.Completion) (*domain.Completion, error) {
	var pgCompletion PgCompletion
	pgCompletion.FromDomain(c)

	var row PgCompletion
	found, err := p.Builder.Insert(completionsTable).
		Rows(pgCompletion).
		Returning(&PgCompletion{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store completion into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store completion into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompletionByID(ctx context.Context, id domain.CompletionID) (*domain.Completion, error) {
	var row PgCompletion
	found, err := p.Builder.From(completionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch completion by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateCompletionByID updates a single completion with provided fields. Only
// non-nil fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateCompletionByID(ctx context.Context,
	id domain.CompletionID,
	updates storage.CompletionUpdates) (*domain.Completion, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.SubmittedAt != nil {
		rec["submitted_at"] = *updates.SubmittedAt
	}
	if updates.ReviewedAt != nil {
		rec["reviewed_at"] = *updates.ReviewedAt
	}
	if updates.ReviewerID != nil {
		rec["reviewer_id"] = uuid.UUID(*updates.ReviewerID)
	}
	if updates.ReviewNote != nil {
		rec["review_note"] = nullString(*updates.ReviewNote)
	}

	var row PgCompletion
	found, err := p.Builder.Update(completionsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgCompletion{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update completion in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ActiveCompletionByTask returns the single non-terminal completion of a
// task, or nil if none exists.
func (p *PgSQL) ActiveCompletionByTask(ctx context.Context, taskID domain.TaskID) (*domain.Completion, error) {
	var row PgCompletion
	found, err := p.Builder.From(completionsTable).
		Where(
			goqu.I("task_id").Eq(uuid.UUID(taskID)),
			goqu.I("status").In(
				string(domain.CompletionStatusInProgress),
				string(domain.CompletionStatusPendingReview),
			),
		).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active completion: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CompletionsByTask(ctx context.Context, taskID domain.TaskID) ([]domain.Completion, error) {
	var rows []PgCompletion
	if err := p.Builder.From(completionsTable).
		Where(goqu.I("task_id").Eq(uuid.UUID(taskID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch task completions from pg: %w", err)
	}

	out := make([]domain.Completion, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// ApprovedCompletionCount counts the user's approved completions across the
// whole group.
func (p *PgSQL) ApprovedCompletionCount(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(goqu.T(completionsTable).As("c")).
		Join(goqu.T(tasksTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("c.task_id")))).
		Where(
			goqu.I("t.group_id").Eq(uuid.UUID(groupID)),
			goqu.I("c.user_id").Eq(uuid.UUID(userID)),
			goqu.I("c.status").Eq(string(domain.CompletionStatusApproved)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count approved completions in pg: %w", err)
	}

	return count, nil
}

// ApprovedTaskCompletionCount counts the user's approved completions of one
// task.
func (p *PgSQL) ApprovedTaskCompletionCount(ctx context.Context, taskID domain.TaskID, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(completionsTable).
		Where(
			goqu.I("task_id").Eq(uuid.UUID(taskID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("status").Eq(string(domain.CompletionStatusApproved)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count approved task completions in pg: %w", err)
	}

	return count, nil
}

// ApprovedCompletionDays returns the distinct UTC days with at least one
// approved completion, newest first.
func (p *PgSQL) ApprovedCompletionDays(ctx context.Context,
	groupID domain.GroupID,
	userID domain.UserID,
	limit uint) ([]time.Time, error) {
	day := goqu.L("date_trunc('day', c.reviewed_at AT TIME ZONE 'UTC')")

	var rows []struct {
		Day time.Time `db:"day"`
	}
	if err := p.Builder.From(goqu.T(completionsTable).As("c")).
		Join(goqu.T(tasksTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("c.task_id")))).
		Select(day.As("day")).
		Distinct().
		Where(
			goqu.I("t.group_id").Eq(uuid.UUID(groupID)),
			goqu.I("c.user_id").Eq(uuid.UUID(userID)),
			goqu.I("c.status").Eq(string(domain.CompletionStatusApproved)),
			goqu.I("c.reviewed_at").IsNotNull(),
		).
		Order(goqu.I("day").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch approved completion days from pg: %w", err)
	}

	out := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Day)
	}

	return out, nil
}
