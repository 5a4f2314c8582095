package bonus

import (
	"context"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

// RuleInput carries the fields accepted when creating a bonus rule.
type RuleInput struct {
	Name          string
	TaskID        *domain.TaskID
	TaskType      *domain.TaskType
	Amount        int64
	Condition     domain.RuleCondition
	MinHoursEarly int
}

//go:generate mockgen -package mockbonus -source=interface.go -destination=mock/mockbonus.go *
type Bonus interface {
	// Account returns the bonus account of a user in a group.
	Account(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Account, error)
	// Transactions returns a page of the ledger of a user's account with an
	// RFC3339 cursor.
	Transactions(ctx context.Context,
		groupID domain.GroupID,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.Transaction, string, error)
	// Adjust applies a manual balance adjustment by an administrator. The
	// amount is always positive; up selects the direction.
	Adjust(ctx context.Context,
		actorID domain.UserID,
		groupID domain.GroupID,
		userID domain.UserID,
		amount int64,
		up bool,
		description string) (*domain.Transaction, error)

	// CreateRule adds a bonus rule to the group.
	CreateRule(ctx context.Context, groupID domain.GroupID, input RuleInput) (*domain.Rule, error)
	// Rule fetches a single rule by ID.
	Rule(ctx context.Context, ruleID domain.RuleID) (*domain.Rule, error)
	// UpdateRule modifies an existing rule.
	UpdateRule(ctx context.Context, ruleID domain.RuleID, updates storage.RuleUpdates) (*domain.Rule, error)
	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, ruleID domain.RuleID) error
	// Rules returns a page of the group's rules with an RFC3339 cursor.
	Rules(ctx context.Context, groupID domain.GroupID, cursor string, limit uint) ([]domain.Rule, string, error)

	// EnsureAccountTx creates the user's account in the group if it does not
	// exist yet, using the caller's transaction handle.
	EnsureAccountTx(ctx context.Context,
		tx storage.AllStorage,
		group domain.Group,
		userID domain.UserID) (*domain.Account, error)
	// CreditTx adds points to an account inside the caller's transaction.
	CreditTx(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error)
	// DebitTx removes points from an account inside the caller's transaction.
	// Returns serrors.ErrInsufficientFunds when the balance cannot cover the
	// amount.
	DebitTx(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error)
	// AwardForCompletionTx evaluates the rule engine for an approved
	// completion and applies the resulting credit (or debit for penalty
	// tasks). Returns nil without error when no rule matched and the task has
	// no fixed points.
	AwardForCompletionTx(ctx context.Context,
		tx storage.AllStorage,
		task domain.Task,
		completion domain.Completion) (*domain.Transaction, error)
}

// Entry describes a single balance change applied through CreditTx/DebitTx.
type Entry struct {
	GroupID domain.GroupID
	UserID  domain.UserID

	Type        domain.TransactionType
	Amount      int64
	Description string

	CompletionID *domain.CompletionID
	RedemptionID *domain.RedemptionID
	ActorID      *domain.UserID
}
