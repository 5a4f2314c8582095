package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskID uniquely identifies a task.
type TaskID uuid.UUID

// CompletionID uniquely identifies a task completion record.
type CompletionID uuid.UUID

// TaskType categorizes a task and drives how an approved completion affects
// the bonus account: penalties debit points instead of crediting them.
type TaskType string

const (
	// TaskTypeRegular is an ordinary task rewarded with points.
	TaskTypeRegular TaskType = "REGULAR"
	// TaskTypePenalty is a violation record; approving it debits points.
	TaskTypePenalty TaskType = "PENALTY"
	// TaskTypeEvent is a one-off group event rewarded with points.
	TaskTypeEvent TaskType = "EVENT"
)

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "LOW"
	TaskPriorityMedium   TaskPriority = "MEDIUM"
	TaskPriorityHigh     TaskPriority = "HIGH"
	TaskPriorityCritical TaskPriority = "CRITICAL"
)

// TaskStatus is the lifecycle state of a task.
//
// The transitions are:
//
//	OPEN -> IN_PROGRESS        (member takes the task, or admin assigns it)
//	IN_PROGRESS -> PENDING_REVIEW (assignee submits their work)
//	PENDING_REVIEW -> COMPLETED   (admin approves; bonus is calculated)
//	PENDING_REVIEW -> IN_PROGRESS (admin rejects; note required)
//	OPEN | IN_PROGRESS -> CANCELLED (assignee or admin cancels)
//	OPEN -> EXPIRED               (due date passed; set by the scheduler)
type TaskStatus string

const (
	TaskStatusOpen          TaskStatus = "OPEN"
	TaskStatusInProgress    TaskStatus = "IN_PROGRESS"
	TaskStatusPendingReview TaskStatus = "PENDING_REVIEW"
	TaskStatusCompleted     TaskStatus = "COMPLETED"
	TaskStatusCancelled     TaskStatus = "CANCELLED"
	TaskStatusExpired       TaskStatus = "EXPIRED"
)

// Recurrence describes how often a template task spawns new instances.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceDaily   Recurrence = "DAILY"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// Interval returns the duration between two spawned instances. Monthly
// recurrence is approximated by calendar-month addition at spawn time, so it
// returns zero here.
func (r Recurrence) Interval() time.Duration {
	switch r {
	case RecurrenceDaily:
		return 24 * time.Hour
	case RecurrenceWeekly:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Task is a unit of work inside a group. A task with a non-NONE Recurrence is
// a template: it never changes status itself, the scheduler spawns plain
// instances from it.
type Task struct {
	ID      TaskID  `json:"id"`
	GroupID GroupID `json:"groupId"`

	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        TaskType     `json:"type"`
	Priority    TaskPriority `json:"priority"`

	// Points overrides rule-based calculation when > 0. When zero, the bonus
	// rule engine decides the amount on approval.
	Points int64 `json:"points,omitempty"`

	Status TaskStatus `json:"status"`
	// AssigneeID is set while the task is in progress or under review.
	AssigneeID *UserID `json:"assigneeId,omitempty"`

	DueAt time.Time `json:"dueAt,omitzero"`

	// Recurrence fields; meaningful only on templates.
	Recurrence    Recurrence `json:"recurrence"`
	RecurEndAt    time.Time  `json:"recurEndAt,omitzero"`
	LastSpawnedAt time.Time  `json:"-"`
	// TemplateID links a spawned instance back to its template.
	TemplateID *TaskID `json:"templateId,omitempty"`

	CreatedBy UserID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// IsTemplate reports whether the task is a recurring template rather than a
// workable instance.
func (t Task) IsTemplate() bool { return t.Recurrence != RecurrenceNone }

// CompletionStatus is the state of a single completion attempt.
type CompletionStatus string

const (
	CompletionStatusInProgress    CompletionStatus = "IN_PROGRESS"
	CompletionStatusPendingReview CompletionStatus = "PENDING_REVIEW"
	CompletionStatusApproved      CompletionStatus = "APPROVED"
	CompletionStatusRejected      CompletionStatus = "REJECTED"
	CompletionStatusCancelled     CompletionStatus = "CANCELLED"
)

// Completion records one user's attempt at a task, from taking it through
// review. A task has at most one non-terminal completion at a time.
type Completion struct {
	ID     CompletionID `json:"id"`
	TaskID TaskID       `json:"taskId"`
	UserID UserID       `json:"userId"`

	Status CompletionStatus `json:"status"`

	StartedAt   time.Time `json:"startedAt"`
	SubmittedAt time.Time `json:"submittedAt,omitzero"`
	ReviewedAt  time.Time `json:"reviewedAt,omitzero"`

	// ReviewerID and ReviewNote are set when the completion has been reviewed.
	ReviewerID *UserID `json:"reviewerId,omitempty"`
	ReviewNote string  `json:"reviewNote,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Terminal reports whether the completion reached a final state.
func (c Completion) Terminal() bool {
	switch c.Status {
	case CompletionStatusApproved, CompletionStatusRejected, CompletionStatusCancelled:
		return true
	default:
		return false
	}
}
