package bonus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/metrics"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// bonus is the concrete implementation of the Bonus interface. All balance
// mutations run inside a transaction holding a row lock on the account, so
// the non-negative balance invariant and the balance_after ledger column stay
// consistent under concurrency.
type bonus struct {
	storage storage.Storage
}

func (b bonus) Account(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Account, error) {
	account, err := b.storage.Account(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if account == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return account, nil
}

// Transactions returns a page of the user's ledger. It supports cursor-based
// pagination using an RFC3339 timestamp string.
func (b bonus) Transactions(ctx context.Context,
	groupID domain.GroupID,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.Transaction, string, error) {
	account, err := b.Account(ctx, groupID, userID)
	if err != nil {
		return nil, "", err
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := b.storage.TransactionsByAccount(ctx, account.ID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get account transactions: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Transactions, next, nil
}

// Adjust applies a manual adjustment by an administrator.
func (b bonus) Adjust(ctx context.Context,
	actorID domain.UserID,
	groupID domain.GroupID,
	userID domain.UserID,
	amount int64,
	up bool,
	description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "adjustment amount must be positive")
	}

	entry := Entry{
		GroupID:     groupID,
		UserID:      userID,
		Amount:      amount,
		Description: description,
		ActorID:     &actorID,
	}

	var tx *domain.Transaction
	if err := b.storage.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		if up {
			entry.Type = domain.TransactionAdjustUp
			tx, err = b.CreditTx(ctx, s, entry)
		} else {
			entry.Type = domain.TransactionAdjustDown
			tx, err = b.DebitTx(ctx, s, entry)
		}

		return err
	}); err != nil {
		return nil, err
	}

	return tx, nil
}

func (b bonus) CreateRule(ctx context.Context, groupID domain.GroupID, input RuleInput) (*domain.Rule, error) {
	if input.Amount <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "rule amount must be positive")
	}
	if input.TaskID != nil && input.TaskType != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "rule cannot be bound to both a task and a task type")
	}
	if input.Condition == domain.RuleEarly && input.MinHoursEarly <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "EARLY rules require minHoursEarly")
	}

	rule, err := b.storage.StoreRule(ctx, domain.Rule{
		GroupID:       groupID,
		Name:          input.Name,
		TaskID:        input.TaskID,
		TaskType:      input.TaskType,
		Amount:        input.Amount,
		Condition:     input.Condition,
		MinHoursEarly: input.MinHoursEarly,
		Active:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create rule: %w", err)
	}

	return rule, nil
}

func (b bonus) Rule(ctx context.Context, ruleID domain.RuleID) (*domain.Rule, error) {
	rule, err := b.storage.RuleByID(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch rule: %w", err)
	}
	if rule == nil {
		return nil, serrors.With(serrors.ErrNotFound, "rule not found")
	}

	return rule, nil
}

func (b bonus) UpdateRule(ctx context.Context, ruleID domain.RuleID, updates storage.RuleUpdates) (*domain.Rule, error) {
	rule, err := b.storage.UpdateRuleByID(ctx, ruleID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update rule: %w", err)
	}
	if rule == nil {
		return nil, serrors.With(serrors.ErrNotFound, "rule not found")
	}

	return rule, nil
}

func (b bonus) DeleteRule(ctx context.Context, ruleID domain.RuleID) error {
	rule, err := b.storage.DeleteRule(ctx, ruleID)
	if err != nil {
		return fmt.Errorf("could not delete rule: %w", err)
	}
	if rule == nil {
		return serrors.With(serrors.ErrNotFound, "rule not found")
	}

	return nil
}

func (b bonus) Rules(ctx context.Context, groupID domain.GroupID, cursor string, limit uint) ([]domain.Rule, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := b.storage.RulesByGroup(ctx, groupID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get group rules: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Rules, next, nil
}

// EnsureAccountTx creates the account on first use. The unique constraint on
// (user_id, group_id) resolves races between concurrent creators.
func (b bonus) EnsureAccountTx(ctx context.Context,
	tx storage.AllStorage,
	group domain.Group,
	userID domain.UserID) (*domain.Account, error) {
	account, err := tx.Account(ctx, group.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if account != nil {
		return account, nil
	}

	account, err = tx.StoreAccount(ctx, domain.Account{
		UserID:   userID,
		GroupID:  group.ID,
		Currency: group.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create account: %w", err)
	}

	return account, nil
}

// CreditTx adds points to the account and appends the ledger entry.
func (b bonus) CreditTx(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error) {
	if !entry.Type.Credits() {
		return nil, serrors.With(serrors.ErrBadRequest, "transaction type %s does not credit", entry.Type)
	}

	return b.applyTx(ctx, tx, entry)
}

// DebitTx removes points from the account and appends the ledger entry.
func (b bonus) DebitTx(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error) {
	if entry.Type.Credits() {
		return nil, serrors.With(serrors.ErrBadRequest, "transaction type %s does not debit", entry.Type)
	}

	return b.applyTx(ctx, tx, entry)
}

// applyTx performs the locked read-modify-write of a single balance change.
func (b bonus) applyTx(ctx context.Context, tx storage.AllStorage, entry Entry) (*domain.Transaction, error) {
	if entry.Amount <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "transaction amount must be positive")
	}

	account, err := tx.AccountForUpdate(ctx, entry.GroupID, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not lock account: %w", err)
	}
	if account == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	balance := account.Balance
	earned := account.Earned
	if entry.Type.Credits() {
		balance += entry.Amount
		if entry.Type == domain.TransactionCredit {
			earned += entry.Amount
		}
	} else {
		if balance < entry.Amount {
			return nil, serrors.With(serrors.ErrInsufficientFunds,
				"balance %d cannot cover %d", balance, entry.Amount)
		}
		balance -= entry.Amount
	}

	now := time.Now()
	if err := tx.UpdateAccountBalance(ctx, account.ID, balance, earned, now); err != nil {
		return nil, fmt.Errorf("could not update account balance: %w", err)
	}

	stored, err := tx.StoreTransaction(ctx, domain.Transaction{
		AccountID:    account.ID,
		Type:         entry.Type,
		Amount:       entry.Amount,
		BalanceAfter: balance,
		Description:  entry.Description,
		CompletionID: entry.CompletionID,
		RedemptionID: entry.RedemptionID,
		ActorID:      entry.ActorID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store transaction: %w", err)
	}

	metrics.BonusTransactions.WithLabelValues(string(entry.Type)).Inc()

	return stored, nil
}

// AwardForCompletionTx resolves the award for an approved completion and
// applies it. Penalty tasks debit instead of crediting.
func (b bonus) AwardForCompletionTx(ctx context.Context,
	tx storage.AllStorage,
	task domain.Task,
	completion domain.Completion) (*domain.Transaction, error) {
	amount, err := b.resolveAward(ctx, tx, task, completion)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, nil
	}

	entry := Entry{
		GroupID:      task.GroupID,
		UserID:       completion.UserID,
		Amount:       amount,
		Description:  task.Title,
		CompletionID: &completion.ID,
	}

	if task.Type == domain.TaskTypePenalty {
		entry.Type = domain.TransactionDebit

		stored, err := b.DebitTx(ctx, tx, entry)
		if err != nil {
			// a penalty larger than the balance empties the account instead
			// of failing the review
			if errors.Is(err, serrors.ErrInsufficientFunds) {
				account, aerr := tx.Account(ctx, task.GroupID, completion.UserID)
				if aerr != nil || account == nil || account.Balance == 0 {
					return nil, nil //nolint: nilerr
				}
				entry.Amount = account.Balance

				return b.DebitTx(ctx, tx, entry)
			}

			return nil, err
		}

		return stored, nil
	}

	entry.Type = domain.TransactionCredit

	return b.CreditTx(ctx, tx, entry)
}

// New creates a new Bonus instance backed by the provided storage.
func New(storage storage.Storage) Bonus {
	return &bonus{storage: storage}
}
