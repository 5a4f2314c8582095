package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies a bonus account.
type AccountID uuid.UUID

// TransactionID uniquely identifies a ledger transaction.
type TransactionID uuid.UUID

// RuleID uniquely identifies a bonus rule.
type RuleID uuid.UUID

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	// TransactionCredit adds points earned through a task completion.
	TransactionCredit TransactionType = "CREDIT"
	// TransactionDebit removes points (penalty or reward redemption).
	TransactionDebit TransactionType = "DEBIT"
	// TransactionRefund returns previously debited points.
	TransactionRefund TransactionType = "REFUND"
	// TransactionAdjustUp is a manual increase by an administrator.
	TransactionAdjustUp TransactionType = "ADJUST_UP"
	// TransactionAdjustDown is a manual decrease by an administrator.
	TransactionAdjustDown TransactionType = "ADJUST_DOWN"
)

// Credits reports whether the transaction type increases the balance.
func (t TransactionType) Credits() bool {
	switch t {
	case TransactionCredit, TransactionRefund, TransactionAdjustUp:
		return true
	default:
		return false
	}
}

// Account is a user's bonus balance within one group. Balance changes happen
// only together with an appended Transaction, inside one database transaction.
type Account struct {
	ID      AccountID `json:"id"`
	UserID  UserID    `json:"userId"`
	GroupID GroupID   `json:"groupId"`

	// Balance is the spendable amount. Never negative.
	Balance int64 `json:"balance"`
	// Earned is the lifetime sum of credited points; it only grows and drives
	// level progression.
	Earned int64 `json:"earned"`

	// Currency is a copy of the group currency at account creation time.
	Currency string `json:"currency"`

	LastTransactionAt time.Time `json:"lastTransactionAt,omitzero"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Transaction is one append-only ledger entry.
type Transaction struct {
	ID        TransactionID `json:"id"`
	AccountID AccountID     `json:"accountId"`

	Type TransactionType `json:"type"`
	// Amount is always positive; Type determines the direction.
	Amount int64 `json:"amount"`
	// BalanceAfter is the account balance after applying this entry.
	BalanceAfter int64 `json:"balanceAfter"`

	Description string `json:"description,omitempty"`

	// CompletionID links the entry to the task completion that earned it.
	CompletionID *CompletionID `json:"completionId,omitempty"`
	// RedemptionID links the entry to a reward redemption.
	RedemptionID *RedemptionID `json:"redemptionId,omitempty"`
	// ActorID is the administrator who made a manual adjustment.
	ActorID *UserID `json:"actorId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// RuleCondition is the predicate a completion must satisfy for a bonus rule
// to apply.
type RuleCondition string

const (
	// RuleAlways applies to every approved completion in scope.
	RuleAlways RuleCondition = "ALWAYS"
	// RuleOnTime requires submission at or before the task due date.
	RuleOnTime RuleCondition = "ON_TIME"
	// RuleEarly requires submission at least MinHoursEarly before the due date.
	RuleEarly RuleCondition = "EARLY"
	// RuleFirstCompletion requires this to be the user's first approved
	// completion in the group.
	RuleFirstCompletion RuleCondition = "FIRST_COMPLETION"
	// RuleFirstTaskCompletion requires this to be the user's first approved
	// completion of this particular task.
	RuleFirstTaskCompletion RuleCondition = "FIRST_TASK_COMPLETION"
)

// Rule awards points for approved completions. Scope specificity, from most
// to least specific: rule bound to a task, rule bound to a task type, rule
// for the whole group.
type Rule struct {
	ID      RuleID  `json:"id"`
	GroupID GroupID `json:"groupId"`

	Name string `json:"name"`

	// TaskID limits the rule to a single task when set.
	TaskID *TaskID `json:"taskId,omitempty"`
	// TaskType limits the rule to one task type when set and TaskID is not.
	TaskType *TaskType `json:"taskType,omitempty"`

	// Amount is the number of points awarded (or debited for penalty tasks).
	Amount int64 `json:"amount"`

	Condition RuleCondition `json:"condition"`
	// MinHoursEarly configures the EARLY condition.
	MinHoursEarly int `json:"minHoursEarly,omitempty"`

	Active bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// Specificity ranks the rule scope; lower is more specific.
func (r Rule) Specificity() int {
	switch {
	case r.TaskID != nil:
		return 0
	case r.TaskType != nil:
		return 1
	default:
		return 2
	}
}
