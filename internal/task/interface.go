package task

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

// CreateInput carries the fields accepted when creating a task or a recurring
// template.
type CreateInput struct {
	Title       string
	Description string
	Type        domain.TaskType
	Priority    domain.TaskPriority
	// Points overrides rule-based bonus calculation when > 0.
	Points int64
	// AssigneeID immediately assigns the task when set.
	AssigneeID *domain.UserID
	DueAt      time.Time
	// Recurrence turns the task into a template spawning instances on a
	// schedule.
	Recurrence domain.Recurrence
	RecurEndAt time.Time
}

// ListFilter narrows task listings.
type ListFilter struct {
	Status        domain.TaskStatus
	Type          domain.TaskType
	AssigneeID    *domain.UserID
	TemplatesOnly bool
}

//go:generate mockgen -package mocktask -source=interface.go -destination=mock/mocktask.go *
type Tasks interface {
	// Create creates a task in a group. Admins can create any task; regular
	// members only when the group allows proposals, and never penalties.
	Create(ctx context.Context, actorID domain.UserID, groupID domain.GroupID, input CreateInput) (*domain.Task, error)
	// Task fetches a task; requires group membership.
	Task(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error)
	// Update modifies task fields; requires an administrative role.
	Update(ctx context.Context, actorID domain.UserID, taskID domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error)
	// Delete soft-deletes a task; requires an administrative role.
	Delete(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) error
	// List returns a page of the group's tasks with an RFC3339 cursor.
	List(ctx context.Context,
		actorID domain.UserID,
		groupID domain.GroupID,
		filter ListFilter,
		cursor string,
		limit uint) ([]domain.Task, string, error)

	// Take lets a member claim an open task for themselves.
	Take(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error)
	// Assign puts an open task on a member; requires an administrative role.
	Assign(ctx context.Context, actorID domain.UserID, taskID domain.TaskID, assigneeID domain.UserID) (*domain.Task, error)
	// Submit moves the assignee's work into review.
	Submit(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error)
	// Review approves or rejects a submitted completion; requires an
	// administrative role. Approval credits (or, for penalties, debits) the
	// assignee's account and re-evaluates levels and badges. Rejection
	// requires a note and hands the task back to the assignee.
	Review(ctx context.Context,
		actorID domain.UserID,
		taskID domain.TaskID,
		approve bool,
		note string) (*domain.Task, error)
	// Cancel aborts an open or in-progress task. The assignee can cancel
	// their own task, admins can cancel any.
	Cancel(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error)
	// Completions returns the task's completion history, newest first.
	Completions(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) ([]domain.Completion, error)

	// SpawnDueInstances creates instances from recurring templates that are
	// due at the given time. Called by the scheduler job. Returns how many
	// instances were spawned.
	SpawnDueInstances(ctx context.Context, now time.Time, limit uint) (int, error)
	// ExpireOverdue marks open tasks past their due date as expired and
	// returns how many were affected. Called by the scheduler job.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
	// RemindDueSoon notifies assignees about tasks due within the window.
	// Called by the scheduler job.
	RemindDueSoon(ctx context.Context, now time.Time, window time.Duration) (int, error)
}
