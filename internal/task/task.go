package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/internal/gamification"
	"github.com/mserjo/bossy/internal/group"
	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/metrics"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// spawnBatchLimit caps how many templates one scheduler run processes.
const spawnBatchLimit = 200

// tasks is the concrete implementation of the Tasks interface.
type tasks struct {
	storage      storage.Storage
	groups       group.Groups
	bonus        bonus.Bonus
	gamification gamification.Gamification
	notifier     notification.Notifier
}

func (t tasks) Create(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	input CreateInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "task title is required")
	}
	if input.Points < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "task points cannot be negative")
	}
	if input.Type == "" {
		input.Type = domain.TaskTypeRegular
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if input.Recurrence == "" {
		input.Recurrence = domain.RecurrenceNone
	}
	if input.Recurrence != domain.RecurrenceNone && input.AssigneeID != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "recurring templates cannot have an assignee")
	}

	membership, err := t.groups.RequireMember(ctx, groupID, actorID)
	if err != nil {
		return nil, err
	}
	if !membership.Role.CanAdminister() {
		grp, err := t.storage.GroupByID(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("could not fetch group: %w", err)
		}
		if grp == nil || !grp.AllowProposals || input.Type == domain.TaskTypePenalty {
			return nil, serrors.With(serrors.ErrForbidden, "administrative role required to create this task")
		}
	}

	if input.AssigneeID != nil {
		if _, err := t.groups.RequireMember(ctx, groupID, *input.AssigneeID); err != nil {
			return nil, serrors.With(serrors.ErrBadRequest, "assignee is not a member of the group")
		}
	}

	var stored *domain.Task
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rows, err := tx.StoreTasks(ctx, domain.Task{
			GroupID:     groupID,
			Title:       input.Title,
			Description: input.Description,
			Type:        input.Type,
			Priority:    input.Priority,
			Points:      input.Points,
			Status:      domain.TaskStatusOpen,
			DueAt:       input.DueAt,
			Recurrence:  input.Recurrence,
			RecurEndAt:  input.RecurEndAt,
			CreatedBy:   actorID,
		})
		if err != nil {
			return fmt.Errorf("could not store task: %w", err)
		}
		stored = &rows[0]

		if input.AssigneeID == nil {
			return nil
		}

		stored, err = t.startTx(ctx, tx, *stored, *input.AssigneeID)
		if err != nil {
			return err
		}
		if *input.AssigneeID == actorID {
			return nil
		}

		return t.notifier.NotifyTx(ctx, tx, domain.Notification{
			UserID:  *input.AssigneeID,
			Type:    domain.NotificationTaskAssigned,
			Title:   fmt.Sprintf("You were assigned: %s", stored.Title),
			GroupID: &groupID,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not create task: %w", err)
	}

	return stored, nil
}

func (t tasks) Task(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	return t.memberTask(ctx, actorID, taskID)
}

func (t tasks) Update(ctx context.Context,
	actorID domain.UserID,
	taskID domain.TaskID,
	updates storage.TaskUpdates) (*domain.Task, error) {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := t.groups.RequireAdmin(ctx, task.GroupID, actorID); err != nil {
		return nil, err
	}
	// lifecycle transitions go through the dedicated operations
	updates.Status = ""
	updates.AssigneeID = nil

	updated, err := t.storage.UpdateTaskByID(ctx, taskID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "task not found")
	}

	return updated, nil
}

func (t tasks) Delete(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) error {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return err
	}
	if _, err := t.groups.RequireAdmin(ctx, task.GroupID, actorID); err != nil {
		return err
	}

	deleted, err := t.storage.DeleteTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "task not found")
	}

	return nil
}

func (t tasks) List(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	filter ListFilter,
	cursor string,
	limit uint) ([]domain.Task, string, error) {
	if _, err := t.groups.RequireMember(ctx, groupID, actorID); err != nil {
		return nil, "", err
	}

	var cursorTime time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = parsed
	}

	page, err := t.storage.TasksByGroup(ctx, groupID, storage.TaskFilter{
		Status:        filter.Status,
		Type:          filter.Type,
		AssigneeID:    filter.AssigneeID,
		TemplatesOnly: filter.TemplatesOnly,
	}, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get group tasks: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Tasks, next, nil
}

// Take claims an open task for the caller.
func (t tasks) Take(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Task
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = t.startTx(ctx, tx, *task, actorID)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not take task: %w", err)
	}

	return updated, nil
}

// Assign puts an open task on the given member and notifies them.
func (t tasks) Assign(ctx context.Context,
	actorID domain.UserID,
	taskID domain.TaskID,
	assigneeID domain.UserID) (*domain.Task, error) {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := t.groups.RequireAdmin(ctx, task.GroupID, actorID); err != nil {
		return nil, err
	}
	if _, err := t.groups.RequireMember(ctx, task.GroupID, assigneeID); err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "assignee is not a member of the group")
	}

	var updated *domain.Task
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = t.startTx(ctx, tx, *task, assigneeID)
		if err != nil {
			return err
		}
		if assigneeID == actorID {
			return nil
		}

		return t.notifier.NotifyTx(ctx, tx, domain.Notification{
			UserID:  assigneeID,
			Type:    domain.NotificationTaskAssigned,
			Title:   fmt.Sprintf("You were assigned: %s", updated.Title),
			GroupID: &task.GroupID,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not assign task: %w", err)
	}

	return updated, nil
}

// Submit moves the assignee's work into review and notifies the task creator.
func (t tasks) Submit(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.TaskStatusInProgress {
		return nil, serrors.With(serrors.ErrConflict, "task is not in progress")
	}
	if task.AssigneeID == nil || *task.AssigneeID != actorID {
		return nil, serrors.With(serrors.ErrForbidden, "only the assignee can submit the task")
	}

	completion, err := t.storage.ActiveCompletionByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active completion: %w", err)
	}
	if completion == nil || completion.Status != domain.CompletionStatusInProgress {
		return nil, serrors.With(serrors.ErrConflict, "task has no completion in progress")
	}

	now := time.Now()

	var updated *domain.Task
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateCompletionByID(ctx, completion.ID, storage.CompletionUpdates{
			Status:      domain.CompletionStatusPendingReview,
			SubmittedAt: &now,
		}); err != nil {
			return fmt.Errorf("could not update completion: %w", err)
		}

		updated, err = tx.UpdateTaskByID(ctx, taskID, storage.TaskUpdates{
			Status:     domain.TaskStatusPendingReview,
			FromStatus: domain.TaskStatusInProgress,
		})
		if err != nil {
			return fmt.Errorf("could not update task: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "task is no longer in progress")
		}

		if task.CreatedBy == actorID {
			return nil
		}

		return t.notifier.NotifyTx(ctx, tx, domain.Notification{
			UserID:  task.CreatedBy,
			Type:    domain.NotificationTaskSubmitted,
			Title:   fmt.Sprintf("Submitted for review: %s", task.Title),
			GroupID: &task.GroupID,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not submit task: %w", err)
	}

	return updated, nil
}

// Review approves or rejects a submitted completion. Approval pays out the
// bonus, re-evaluates levels and badges and notifies the assignee about
// everything they earned. Rejection requires a note and hands the task back.
func (t tasks) Review(ctx context.Context,
	actorID domain.UserID,
	taskID domain.TaskID,
	approve bool,
	note string) (*domain.Task, error) {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := t.groups.RequireAdmin(ctx, task.GroupID, actorID); err != nil {
		return nil, err
	}
	if task.Status != domain.TaskStatusPendingReview {
		return nil, serrors.With(serrors.ErrConflict, "task is not pending review")
	}
	if !approve && note == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "a rejection requires a note")
	}

	completion, err := t.storage.ActiveCompletionByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active completion: %w", err)
	}
	if completion == nil || completion.Status != domain.CompletionStatusPendingReview {
		return nil, serrors.With(serrors.ErrConflict, "task has no completion pending review")
	}

	now := time.Now()

	var updated *domain.Task
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if approve {
			updated, err = t.approveTx(ctx, tx, *task, *completion, actorID, note, now)

			return err
		}

		updated, err = t.rejectTx(ctx, tx, *task, *completion, actorID, note, now)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not review task: %w", err)
	}

	outcome := "rejected"
	if approve {
		outcome = "approved"
	}
	metrics.TaskCompletionsReviewed.WithLabelValues(outcome).Inc()

	return updated, nil
}

// approveTx finalizes an approved completion inside the caller's transaction.
func (t tasks) approveTx(ctx context.Context,
	tx storage.AllStorage,
	task domain.Task,
	completion domain.Completion,
	reviewerID domain.UserID,
	note string,
	now time.Time) (*domain.Task, error) {
	reviewed, err := tx.UpdateCompletionByID(ctx, completion.ID, storage.CompletionUpdates{
		Status:     domain.CompletionStatusApproved,
		ReviewedAt: &now,
		ReviewerID: &reviewerID,
		ReviewNote: &note,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update completion: %w", err)
	}

	updated, err := tx.UpdateTaskByID(ctx, task.ID, storage.TaskUpdates{
		Status:     domain.TaskStatusCompleted,
		FromStatus: domain.TaskStatusPendingReview,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "task is no longer pending review")
	}

	notifications := []domain.Notification{{
		UserID:  completion.UserID,
		Type:    domain.NotificationTaskReviewed,
		Title:   fmt.Sprintf("Approved: %s", task.Title),
		Body:    note,
		GroupID: &task.GroupID,
	}}

	award, err := t.bonus.AwardForCompletionTx(ctx, tx, task, *reviewed)
	if err != nil {
		return nil, err
	}
	if award != nil {
		if award.Type.Credits() {
			notifications = append(notifications, domain.Notification{
				UserID:  completion.UserID,
				Type:    domain.NotificationBonusAwarded,
				Title:   fmt.Sprintf("You earned %d for %s", award.Amount, task.Title),
				GroupID: &task.GroupID,
			})

			progress, err := t.gamification.OnPointsEarnedTx(ctx, tx, task.GroupID, completion.UserID)
			if err != nil {
				return nil, err
			}
			if progress.Level != nil {
				notifications = append(notifications, domain.Notification{
					UserID:  completion.UserID,
					Type:    domain.NotificationLevelUp,
					Title:   fmt.Sprintf("You reached level %s", progress.Level.Name),
					GroupID: &task.GroupID,
				})
			}
			for _, badge := range progress.Badges {
				notifications = append(notifications, domain.Notification{
					UserID:  completion.UserID,
					Type:    domain.NotificationBadgeAwarded,
					Title:   fmt.Sprintf("Badge unlocked: %s", badge.Name),
					GroupID: &task.GroupID,
				})
			}
		} else {
			notifications = append(notifications, domain.Notification{
				UserID:  completion.UserID,
				Type:    domain.NotificationPenaltyApplied,
				Title:   fmt.Sprintf("Penalty of %d applied for %s", award.Amount, task.Title),
				GroupID: &task.GroupID,
			})
		}
	}

	if err := t.notifier.NotifyTx(ctx, tx, notifications...); err != nil {
		return nil, err
	}

	return updated, nil
}

// rejectTx records the rejection and opens a fresh completion so the assignee
// can rework the task. The rejected record stays in the history.
func (t tasks) rejectTx(ctx context.Context,
	tx storage.AllStorage,
	task domain.Task,
	completion domain.Completion,
	reviewerID domain.UserID,
	note string,
	now time.Time) (*domain.Task, error) {
	if _, err := tx.UpdateCompletionByID(ctx, completion.ID, storage.CompletionUpdates{
		Status:     domain.CompletionStatusRejected,
		ReviewedAt: &now,
		ReviewerID: &reviewerID,
		ReviewNote: &note,
	}); err != nil {
		return nil, fmt.Errorf("could not update completion: %w", err)
	}

	if _, err := tx.StoreCompletion(ctx, domain.Completion{
		TaskID:    task.ID,
		UserID:    completion.UserID,
		Status:    domain.CompletionStatusInProgress,
		StartedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("could not store completion: %w", err)
	}

	updated, err := tx.UpdateTaskByID(ctx, task.ID, storage.TaskUpdates{
		Status:     domain.TaskStatusInProgress,
		FromStatus: domain.TaskStatusPendingReview,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "task is no longer pending review")
	}

	if err := t.notifier.NotifyTx(ctx, tx, domain.Notification{
		UserID:  completion.UserID,
		Type:    domain.NotificationTaskReviewed,
		Title:   fmt.Sprintf("Rejected: %s", task.Title),
		Body:    note,
		GroupID: &task.GroupID,
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Cancel aborts an open or in-progress task.
func (t tasks) Cancel(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	task, err := t.memberTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != domain.TaskStatusOpen && task.Status != domain.TaskStatusInProgress {
		return nil, serrors.With(serrors.ErrConflict, "task cannot be cancelled in state %s", task.Status)
	}
	if task.AssigneeID == nil || *task.AssigneeID != actorID {
		if _, err := t.groups.RequireAdmin(ctx, task.GroupID, actorID); err != nil {
			return nil, err
		}
	}

	var updated *domain.Task
	if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		completion, err := tx.ActiveCompletionByTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("could not fetch active completion: %w", err)
		}
		if completion != nil {
			if _, err := tx.UpdateCompletionByID(ctx, completion.ID, storage.CompletionUpdates{
				Status: domain.CompletionStatusCancelled,
			}); err != nil {
				return fmt.Errorf("could not update completion: %w", err)
			}
		}

		updated, err = tx.UpdateTaskByID(ctx, taskID, storage.TaskUpdates{
			Status:     domain.TaskStatusCancelled,
			FromStatus: task.Status,
		})
		if err != nil {
			return fmt.Errorf("could not update task: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "task is no longer cancellable")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not cancel task: %w", err)
	}

	return updated, nil
}

func (t tasks) Completions(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) ([]domain.Completion, error) {
	if _, err := t.memberTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}

	completions, err := t.storage.CompletionsByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not get task completions: %w", err)
	}

	return completions, nil
}

// SpawnDueInstances turns due templates into open task instances. Each spawn
// stamps the template so a crashed run never doubles an instance on retry.
func (t tasks) SpawnDueInstances(ctx context.Context, now time.Time, limit uint) (int, error) {
	if limit == 0 || limit > spawnBatchLimit {
		limit = spawnBatchLimit
	}

	templates, err := t.storage.DueTemplates(ctx, now, limit)
	if err != nil {
		return 0, fmt.Errorf("could not fetch due templates: %w", err)
	}

	spawned := 0
	for _, template := range templates {
		if err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			if _, err := tx.StoreTasks(ctx, instanceFromTemplate(template, now)); err != nil {
				return fmt.Errorf("could not store task instance: %w", err)
			}

			if _, err := tx.UpdateTaskByID(ctx, template.ID, storage.TaskUpdates{
				LastSpawnedAt: &now,
			}); err != nil {
				return fmt.Errorf("could not stamp template: %w", err)
			}

			return nil
		}); err != nil {
			return spawned, fmt.Errorf("could not spawn instance of template %s: %w", uuid.UUID(template.ID), err)
		}
		spawned++
	}

	return spawned, nil
}

func (t tasks) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	expired, err := t.storage.ExpireOverdueTasks(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("could not expire overdue tasks: %w", err)
	}

	return len(expired), nil
}

// RemindDueSoon sends a reminder to assignees of tasks due within the window.
func (t tasks) RemindDueSoon(ctx context.Context, now time.Time, window time.Duration) (int, error) {
	due, err := t.storage.TasksDueWithin(ctx, now, window)
	if err != nil {
		return 0, fmt.Errorf("could not fetch tasks due soon: %w", err)
	}

	var notifications []domain.Notification
	for _, task := range due {
		if task.AssigneeID == nil {
			continue
		}
		notifications = append(notifications, domain.Notification{
			UserID:  *task.AssigneeID,
			Type:    domain.NotificationTaskReminder,
			Title:   fmt.Sprintf("Due soon: %s", task.Title),
			Body:    fmt.Sprintf("The task is due at %s", task.DueAt.Format(time.RFC3339)),
			GroupID: &task.GroupID,
		})
	}
	if len(notifications) == 0 {
		return 0, nil
	}

	if err := t.notifier.Notify(ctx, notifications...); err != nil {
		return 0, err
	}

	return len(notifications), nil
}

// memberTask fetches the task and checks the caller's membership in its group.
func (t tasks) memberTask(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	task, err := t.storage.TaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch task: %w", err)
	}
	if task == nil {
		return nil, serrors.With(serrors.ErrNotFound, "task not found")
	}

	if _, err := t.groups.RequireMember(ctx, task.GroupID, actorID); err != nil {
		return nil, err
	}

	return task, nil
}

// startTx moves an open task to in progress for the assignee and opens their
// completion record.
func (t tasks) startTx(ctx context.Context,
	tx storage.AllStorage,
	task domain.Task,
	assigneeID domain.UserID) (*domain.Task, error) {
	if task.IsTemplate() {
		return nil, serrors.With(serrors.ErrConflict, "recurring templates cannot be worked on directly")
	}
	if task.Status != domain.TaskStatusOpen {
		return nil, serrors.With(serrors.ErrConflict, "task is not open")
	}

	assignee := &assigneeID
	updated, err := tx.UpdateTaskByID(ctx, task.ID, storage.TaskUpdates{
		Status:     domain.TaskStatusInProgress,
		AssigneeID: &assignee,
		FromStatus: domain.TaskStatusOpen,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if updated == nil {
		// another claim won the race between the lookup and this update
		return nil, serrors.With(serrors.ErrConflict, "task is no longer open")
	}

	if _, err := tx.StoreCompletion(ctx, domain.Completion{
		TaskID:    task.ID,
		UserID:    assigneeID,
		Status:    domain.CompletionStatusInProgress,
		StartedAt: time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("could not store completion: %w", err)
	}

	return updated, nil
}

// instanceFromTemplate builds the next spawned instance of a template. The
// instance is due one recurrence interval after the spawn.
func instanceFromTemplate(template domain.Task, now time.Time) domain.Task {
	var due time.Time
	if template.Recurrence == domain.RecurrenceMonthly {
		due = now.AddDate(0, 1, 0)
	} else {
		due = now.Add(template.Recurrence.Interval())
	}

	templateID := template.ID

	return domain.Task{
		GroupID:     template.GroupID,
		Title:       template.Title,
		Description: template.Description,
		Type:        template.Type,
		Priority:    template.Priority,
		Points:      template.Points,
		Status:      domain.TaskStatusOpen,
		DueAt:       due,
		Recurrence:  domain.RecurrenceNone,
		TemplateID:  &templateID,
		CreatedBy:   template.CreatedBy,
	}
}

// New creates a new Tasks instance backed by the provided storage and
// collaborating services.
func New(storage storage.Storage,
	groups group.Groups,
	bonus bonus.Bonus,
	gamification gamification.Gamification,
	notifier notification.Notifier) Tasks {
	return &tasks{
		storage:      storage,
		groups:       groups,
		bonus:        bonus,
		gamification: gamification,
		notifier:     notifier,
	}
}
