package storage

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
)

// TaskUpdates describes a set of optional fields that can be applied to an
// existing task during an update. Only non-nil fields will be updated.
type TaskUpdates struct {
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
	// Points, when provided, replaces the fixed point override. Zero clears it.
	Points *int64
	// Status is the new lifecycle state to set; empty means unchanged.
	Status domain.TaskStatus
	// AssigneeID, when provided, sets the assignee. A pointer to a nil
	// UserID clears the assignment (sets NULL).
	AssigneeID **domain.UserID
	// DueAt, when provided, replaces the due date. The zero time clears it.
	DueAt *time.Time
	// LastSpawnedAt, when provided, records when the scheduler last spawned an
	// instance from this template.
	LastSpawnedAt *time.Time
	// FromStatus, when set, makes the update conditional on the task currently
	// being in that status. When the row moved on concurrently the update
	// matches nothing and UpdateTaskByID returns nil.
	FromStatus domain.TaskStatus
}

// TaskFilter narrows task listings. Zero-valued fields are ignored.
type TaskFilter struct {
	Status     domain.TaskStatus
	Type       domain.TaskType
	AssigneeID *domain.UserID
	// TemplatesOnly restricts the listing to recurring templates.
	TemplatesOnly bool
}

// GroupTasks groups a page of tasks together with an optional NextCursor used
// for pagination.
type GroupTasks struct {
	Tasks []domain.Task
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// CompletionUpdates describes optional fields applied to a completion record.
type CompletionUpdates struct {
	Status      domain.CompletionStatus
	SubmittedAt *time.Time
	ReviewedAt  *time.Time
	ReviewerID  *domain.UserID
	ReviewNote  *string
}

// TaskStorage defines CRUD and query operations for tasks, recurring
// templates and completion records. Soft-deleted tasks are excluded from all
// lookups.
type TaskStorage interface {
	// StoreTasks inserts one or more tasks and returns the stored rows as they
	// exist in the database (including generated fields).
	StoreTasks(ctx context.Context, tasks ...domain.Task) ([]domain.Task, error)
	// TaskByID fetches a task by ID. Returns nil when not found.
	TaskByID(ctx context.Context, ID domain.TaskID) (*domain.Task, error)
	// UpdateTaskByID applies the provided field set to a single task and
	// returns the updated row, or nil when the task does not exist or its
	// status does not match the optional FromStatus guard.
	UpdateTaskByID(ctx context.Context, ID domain.TaskID, updates TaskUpdates) (*domain.Task, error)
	// DeleteTask performs a soft delete and returns the deleted task, or nil
	// if it was not found.
	DeleteTask(ctx context.Context, ID domain.TaskID) (*domain.Task, error)
	// TasksByGroup returns a page of tasks in a group created before the
	// optional cursor time, limited by the given limit and filter.
	TasksByGroup(ctx context.Context,
		groupID domain.GroupID,
		filter TaskFilter,
		cursor time.Time,
		limit uint) (GroupTasks, error)

	// DueTemplates returns recurring templates that are due to spawn a new
	// instance at the given time: templates whose recurrence window has not
	// ended and whose last spawn is at least one interval in the past.
	DueTemplates(ctx context.Context, now time.Time, limit uint) ([]domain.Task, error)
	// ExpireOverdueTasks marks open tasks whose due date passed as expired and
	// returns the expired rows.
	ExpireOverdueTasks(ctx context.Context, now time.Time) ([]domain.Task, error)
	// TasksDueWithin returns non-template tasks with an assignee whose due
	// date falls inside (now, now+window] and that are still in progress.
	// Used for reminder notifications.
	TasksDueWithin(ctx context.Context, now time.Time, window time.Duration) ([]domain.Task, error)

	// StoreCompletion inserts a completion record.
	StoreCompletion(ctx context.Context, c domain.Completion) (*domain.Completion, error)
	// CompletionByID fetches a completion by ID. Returns nil when not found.
	CompletionByID(ctx context.Context, ID domain.CompletionID) (*domain.Completion, error)
	// UpdateCompletionByID applies the provided field set and returns the
	// updated row, or nil when the completion does not exist.
	UpdateCompletionByID(ctx context.Context, ID domain.CompletionID, updates CompletionUpdates) (*domain.Completion, error)
	// ActiveCompletionByTask returns the single non-terminal completion of a
	// task, or nil when the task has none.
	ActiveCompletionByTask(ctx context.Context, taskID domain.TaskID) (*domain.Completion, error)
	// CompletionsByTask returns all completion records of a task, newest first.
	CompletionsByTask(ctx context.Context, taskID domain.TaskID) ([]domain.Completion, error)

	// ApprovedCompletionCount returns how many approved completions the user
	// has across the whole group.
	ApprovedCompletionCount(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (int64, error)
	// ApprovedTaskCompletionCount returns how many approved completions the
	// user has for one specific task.
	ApprovedTaskCompletionCount(ctx context.Context, taskID domain.TaskID, userID domain.UserID) (int64, error)
	// ApprovedCompletionDays returns the distinct UTC days (midnight
	// timestamps) on which the user had completions approved in the group,
	// newest first, limited by limit. Used for streak badges.
	ApprovedCompletionDays(ctx context.Context, groupID domain.GroupID, userID domain.UserID, limit uint) ([]time.Time, error)
}
