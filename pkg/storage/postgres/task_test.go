package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
	"github.com/mserjo/bossy/pkg/storage/postgres"
)

func storeTestTask(t *testing.T, pgSQL *postgres.PgSQL, task domain.Task) domain.Task {
	t.Helper()

	stored, err := pgSQL.StoreTasks(context.Background(), task)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	return stored[0]
}

func TestPgSQL_StoreTasks(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)

	t.Run("store empty", func(t *testing.T) {
		res, err := pgSQL.StoreTasks(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("store and fetch", func(t *testing.T) {
		task := storeTestTask(t, pgSQL, domain.Task{
			GroupID:    group.ID,
			Title:      "take out the trash",
			Type:       domain.TaskTypeRegular,
			Priority:   domain.TaskPriorityMedium,
			Status:     domain.TaskStatusOpen,
			Recurrence: domain.RecurrenceNone,
			CreatedBy:  owner.ID,
		})
		require.False(t, task.CreatedAt.IsZero())

		got, err := pgSQL.TaskByID(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "take out the trash", got.Title)
		require.Nil(t, got.AssigneeID)
	})
}

func TestPgSQL_UpdateTaskByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	assignee := createTestUser(t, pgSQL, "assignee")
	group := createTestGroup(t, pgSQL, owner)

	task := storeTestTask(t, pgSQL, domain.Task{
		GroupID:    group.ID,
		Title:      "wash the dishes",
		Type:       domain.TaskTypeRegular,
		Priority:   domain.TaskPriorityLow,
		Status:     domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone,
		CreatedBy:  owner.ID,
	})

	assigneeID := &assignee.ID
	updated, err := pgSQL.UpdateTaskByID(ctx, task.ID, storage.TaskUpdates{
		Status:     domain.TaskStatusInProgress,
		AssigneeID: &assigneeID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.TaskStatusInProgress, updated.Status)
	require.NotNil(t, updated.AssigneeID)
	require.Equal(t, assignee.ID, *updated.AssigneeID)

	t.Run("clear assignee", func(t *testing.T) {
		var cleared *domain.UserID
		updated, err := pgSQL.UpdateTaskByID(ctx, task.ID, storage.TaskUpdates{
			Status:     domain.TaskStatusOpen,
			AssigneeID: &cleared,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Nil(t, updated.AssigneeID)
	})

	t.Run("missing task", func(t *testing.T) {
		title := "ghost"
		got, err := pgSQL.UpdateTaskByID(ctx, domain.TaskID{}, storage.TaskUpdates{Title: &title})
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("status guard lets only one claim through", func(t *testing.T) {
		open := storeTestTask(t, pgSQL, domain.Task{
			GroupID:    group.ID,
			Title:      "water the plants",
			Type:       domain.TaskTypeRegular,
			Priority:   domain.TaskPriorityMedium,
			Status:     domain.TaskStatusOpen,
			Recurrence: domain.RecurrenceNone,
			CreatedBy:  owner.ID,
		})

		claim := func(userID domain.UserID) (*domain.Task, error) {
			who := &userID

			return pgSQL.UpdateTaskByID(ctx, open.ID, storage.TaskUpdates{
				Status:     domain.TaskStatusInProgress,
				AssigneeID: &who,
				FromStatus: domain.TaskStatusOpen,
			})
		}

		first, err := claim(owner.ID)
		require.NoError(t, err)
		require.NotNil(t, first)
		require.Equal(t, domain.TaskStatusInProgress, first.Status)

		// the second claim finds no open row and does not overwrite the first
		second, err := claim(assignee.ID)
		require.NoError(t, err)
		require.Nil(t, second)

		got, err := pgSQL.TaskByID(ctx, open.ID)
		require.NoError(t, err)
		require.Equal(t, owner.ID, *got.AssigneeID)
	})
}

func TestPgSQL_TasksByGroup_FilterAndPagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)

	storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "a", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})
	storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "b", Type: domain.TaskTypePenalty,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})
	storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "weekly", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceWeekly, CreatedBy: owner.ID,
	})

	t.Run("default listing excludes templates", func(t *testing.T) {
		page, err := pgSQL.TasksByGroup(ctx, group.ID, storage.TaskFilter{}, time.Time{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Tasks, 2)
		for _, task := range page.Tasks {
			require.False(t, task.IsTemplate())
		}
	})

	t.Run("templates only", func(t *testing.T) {
		page, err := pgSQL.TasksByGroup(ctx, group.ID, storage.TaskFilter{TemplatesOnly: true}, time.Time{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Tasks, 1)
		require.Equal(t, "weekly", page.Tasks[0].Title)
	})

	t.Run("filter by type", func(t *testing.T) {
		page, err := pgSQL.TasksByGroup(ctx, group.ID, storage.TaskFilter{Type: domain.TaskTypePenalty}, time.Time{}, 10)
		require.NoError(t, err)
		require.Len(t, page.Tasks, 1)
		require.Equal(t, "b", page.Tasks[0].Title)
	})
}

func TestPgSQL_DueTemplates(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)
	now := time.Now()

	fresh := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "daily", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceDaily, CreatedBy: owner.ID,
	})
	ended := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "ended", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceDaily, RecurEndAt: now.Add(-time.Hour),
		CreatedBy: owner.ID,
	})
	storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "plain", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})

	// never-spawned template inside an open window is due
	due, err := pgSQL.DueTemplates(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, fresh.ID, due[0].ID)
	require.NotEqual(t, ended.ID, due[0].ID)

	t.Run("recently spawned template is not due", func(t *testing.T) {
		spawnedAt := now
		_, err := pgSQL.UpdateTaskByID(ctx, fresh.ID, storage.TaskUpdates{LastSpawnedAt: &spawnedAt})
		require.NoError(t, err)

		due, err := pgSQL.DueTemplates(ctx, now, 10)
		require.NoError(t, err)
		require.Empty(t, due)

		// a day later it comes back
		due, err = pgSQL.DueTemplates(ctx, now.Add(25*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
	})
}

func TestPgSQL_ExpireOverdueTasks(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)
	now := time.Now()

	overdue := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "overdue", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		DueAt: now.Add(-time.Hour), Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})
	future := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "future", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		DueAt: now.Add(time.Hour), Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})

	expired, err := pgSQL.ExpireOverdueTasks(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, overdue.ID, expired[0].ID)
	require.Equal(t, domain.TaskStatusExpired, expired[0].Status)

	got, err := pgSQL.TaskByID(ctx, future.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusOpen, got.Status)

	// idempotent
	expired, err = pgSQL.ExpireOverdueTasks(ctx, now)
	require.NoError(t, err)
	require.Empty(t, expired)
}

func TestPgSQL_Completions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	worker := createTestUser(t, pgSQL, "worker")
	group := createTestGroup(t, pgSQL, owner)

	task := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "task", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusInProgress,
		Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})

	completion, err := pgSQL.StoreCompletion(ctx, domain.Completion{
		TaskID:    task.ID,
		UserID:    worker.ID,
		Status:    domain.CompletionStatusInProgress,
		StartedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NotNil(t, completion)

	active, err := pgSQL.ActiveCompletionByTask(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, completion.ID, active.ID)

	t.Run("approval counts", func(t *testing.T) {
		reviewedAt := time.Now()
		note := "well done"
		updated, err := pgSQL.UpdateCompletionByID(ctx, completion.ID, storage.CompletionUpdates{
			Status:     domain.CompletionStatusApproved,
			ReviewedAt: &reviewedAt,
			ReviewerID: &owner.ID,
			ReviewNote: &note,
		})
		require.NoError(t, err)
		require.Equal(t, domain.CompletionStatusApproved, updated.Status)
		require.Equal(t, "well done", updated.ReviewNote)

		// terminal completion is no longer active
		active, err := pgSQL.ActiveCompletionByTask(ctx, task.ID)
		require.NoError(t, err)
		require.Nil(t, active)

		count, err := pgSQL.ApprovedCompletionCount(ctx, group.ID, worker.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)

		count, err = pgSQL.ApprovedTaskCompletionCount(ctx, task.ID, worker.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)

		days, err := pgSQL.ApprovedCompletionDays(ctx, group.ID, worker.ID, 10)
		require.NoError(t, err)
		require.Len(t, days, 1)
	})
}
