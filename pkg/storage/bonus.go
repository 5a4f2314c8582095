package storage

import (
	"context"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
)

// RuleUpdates describes a set of optional fields that can be applied to an
// existing bonus rule during an update. Only non-nil fields will be updated.
type RuleUpdates struct {
	Name *string
	// Amount, when provided, replaces the awarded amount.
	Amount *int64
	// Condition is the new condition to set; empty means unchanged.
	Condition domain.RuleCondition
	// MinHoursEarly, when provided, reconfigures the EARLY condition.
	MinHoursEarly *int
	// Active, when provided, toggles the rule.
	Active *bool
}

// AccountTransactions groups a page of ledger entries together with an
// optional NextCursor used for pagination.
type AccountTransactions struct {
	Transactions []domain.Transaction
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// GroupRules groups a page of bonus rules together with an optional
// NextCursor used for pagination.
type GroupRules struct {
	Rules []domain.Rule
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// BonusStorage defines persistence operations for bonus accounts, the
// append-only transaction ledger and the bonus rule catalog.
//
// Every balance mutation goes through AccountForUpdate followed by
// UpdateAccountBalance and StoreTransaction inside one database transaction;
// callers use Storage.WithTx to get that atomicity.
type BonusStorage interface {
	// StoreAccount inserts a bonus account and returns the stored row.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// Account fetches the account of a user within a group. Returns nil when
	// not found.
	Account(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Account, error)
	// AccountForUpdate fetches the account of a user within a group with a row
	// lock (SELECT ... FOR UPDATE), serializing concurrent balance changes.
	// Must be called inside a transaction; returns ErrNotInTx otherwise.
	AccountForUpdate(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Account, error)
	// GroupAccounts returns all accounts of a group.
	GroupAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error)
	// UpdateAccountBalance sets the balance and lifetime earned counters of an
	// account and stamps last_transaction_at.
	UpdateAccountBalance(ctx context.Context, ID domain.AccountID, balance, earned int64, at time.Time) error

	// StoreTransaction appends a ledger entry and returns the stored row.
	StoreTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
	// TransactionsByAccount returns a page of ledger entries created before
	// the optional cursor time, newest first.
	TransactionsByAccount(ctx context.Context,
		accountID domain.AccountID,
		cursor time.Time,
		limit uint) (AccountTransactions, error)
	// EarnedSince sums CREDIT transactions per user across a group since the
	// given time (the zero time means all time), the same accrual that feeds
	// Account.Earned. The result is ordered by points descending and feeds
	// leaderboards.
	EarnedSince(ctx context.Context, groupID domain.GroupID, since time.Time, limit uint) ([]domain.LeaderboardEntry, error)

	// StoreRule inserts a bonus rule and returns the stored row.
	StoreRule(ctx context.Context, rule domain.Rule) (*domain.Rule, error)
	// RuleByID fetches a rule by ID. Returns nil when not found.
	RuleByID(ctx context.Context, ID domain.RuleID) (*domain.Rule, error)
	// UpdateRuleByID applies the provided field set to a single rule and
	// returns the updated row, or nil when the rule does not exist.
	UpdateRuleByID(ctx context.Context, ID domain.RuleID, updates RuleUpdates) (*domain.Rule, error)
	// DeleteRule performs a soft delete and returns the deleted rule, or nil
	// if it was not found.
	DeleteRule(ctx context.Context, ID domain.RuleID) (*domain.Rule, error)
	// RulesByGroup returns a page of the group's rules, newest first.
	RulesByGroup(ctx context.Context, groupID domain.GroupID, cursor time.Time, limit uint) (GroupRules, error)
	// MatchingRules returns the active rules applicable to a completion of the
	// given task: rules bound to the task, rules bound to its type, and
	// group-wide rules.
	MatchingRules(ctx context.Context, groupID domain.GroupID, taskID domain.TaskID, taskType domain.TaskType) ([]domain.Rule, error)
}
