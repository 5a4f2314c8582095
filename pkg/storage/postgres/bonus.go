package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

const (
	accountsTable     = "accounts"
	transactionsTable = "transactions"
	rulesTable        = "rules"
)

func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var pgAccount PgAccount
	pgAccount.FromDomain(account)

	var row PgAccount
	found, err := p.Builder.Insert(accountsTable).
		Rows(pgAccount).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "account already exists for user in group")
		}

		return nil, fmt.Errorf("could not store account into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store account into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Account(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// AccountForUpdate fetches an account with a row lock. All balance mutations
// go through this lock so that concurrent debits serialize and the
// non-negative balance invariant holds.
func (p *PgSQL) AccountForUpdate(ctx context.Context, groupID domain.GroupID, userID domain.UserID) (*domain.Account, error) {
	if !p.inTx() {
		return nil, storage.ErrNotInTx
	}

	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account for update: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) GroupAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error) {
	var rows []PgAccount
	if err := p.Builder.From(accountsTable).
		Where(goqu.I("group_id").Eq(uuid.UUID(groupID))).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch group accounts from pg: %w", err)
	}

	out := make([]domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateAccountBalance sets the balance counters and stamps
// last_transaction_at.
func (p *PgSQL) UpdateAccountBalance(ctx context.Context, id domain.AccountID, balance, earned int64, at time.Time) error {
	_, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"balance":             balance,
			"earned":              earned,
			"last_transaction_at": at,
			"updated_at":          goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update account balance in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) StoreTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	var pgTx PgTransaction
	pgTx.FromDomain(tx)

	var row PgTransaction
	found, err := p.Builder.Insert(transactionsTable).
		Rows(pgTx).
		Returning(&PgTransaction{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store transaction into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store transaction into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// TransactionsByAccount returns a page of ledger entries for an account,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) TransactionsByAccount(ctx context.Context,
	accountID domain.AccountID,
	cursor time.Time,
	limit uint) (storage.AccountTransactions, error) {
	w := []goqu.Expression{
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgTransaction
	if err := p.Builder.From(transactionsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.AccountTransactions{}, fmt.Errorf("could not fetch account transactions from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.AccountTransactions{
		Transactions: pgTransactionsToDomain(rows),
		NextCursor:   nextCursor,
	}, nil
}

// EarnedSince sums credited points per user in a group since the given time
// (zero time means all time), ordered by points descending. Ties break on
// display name to keep the ordering stable. Only CREDIT transactions count,
// the same accrual as Account.Earned.
func (p *PgSQL) EarnedSince(ctx context.Context,
	groupID domain.GroupID,
	since time.Time,
	limit uint) ([]domain.LeaderboardEntry, error) {
	w := []goqu.Expression{
		goqu.I("a.group_id").Eq(uuid.UUID(groupID)),
		goqu.I("tx.type").Eq(string(domain.TransactionCredit)),
	}
	if !since.IsZero() {
		w = append(w, goqu.I("tx.created_at").Gte(since))
	}

	var rows []struct {
		UserID      uuid.UUID `db:"user_id"`
		DisplayName string    `db:"display_name"`
		Points      int64     `db:"points"`
	}
	if err := p.Builder.From(goqu.T(transactionsTable).As("tx")).
		Join(goqu.T(accountsTable).As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("tx.account_id")))).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("a.user_id")))).
		Select(
			goqu.I("a.user_id").As("user_id"),
			goqu.I("u.display_name").As("display_name"),
			goqu.SUM(goqu.I("tx.amount")).As("points"),
		).
		Where(w...).
		GroupBy(goqu.I("a.user_id"), goqu.I("u.display_name")).
		Order(goqu.I("points").Desc(), goqu.I("display_name").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not compute earned points from pg: %w", err)
	}

	out := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		out = append(out, domain.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      domain.UserID(r.UserID),
			DisplayName: r.DisplayName,
			Points:      r.Points,
		})
	}

	return out, nil
}

func (p *PgSQL) StoreRule(ctx context.Context, rule domain.Rule) (*domain.Rule, error) {
	var pgRule PgRule
	pgRule.FromDomain(rule)

	var row PgRule
	found, err := p.Builder.Insert(rulesTable).
		Rows(pgRule).
		Returning(&PgRule{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store rule into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store rule into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RuleByID(ctx context.Context, id domain.RuleID) (*domain.Rule, error) {
	var row PgRule
	found, err := p.Builder.From(rulesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch rule by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateRuleByID updates a single rule with provided fields. Only non-nil
// fields from updates are set; updated_at is set automatically.
func (p *PgSQL) UpdateRuleByID(ctx context.Context, id domain.RuleID, updates storage.RuleUpdates) (*domain.Rule, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Amount != nil {
		rec["amount"] = *updates.Amount
	}
	if updates.Condition != "" {
		rec["condition"] = string(updates.Condition)
	}
	if updates.MinHoursEarly != nil {
		rec["min_hours_early"] = *updates.MinHoursEarly
	}
	if updates.Active != nil {
		rec["active"] = *updates.Active
	}

	var row PgRule
	found, err := p.Builder.Update(rulesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgRule{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update rule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteRule performs a soft delete by setting deleted_at, returning the
// deleted record.
func (p *PgSQL) DeleteRule(ctx context.Context, id domain.RuleID) (*domain.Rule, error) {
	var row PgRule
	found, err := p.Builder.Update(rulesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgRule{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete rule in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RulesByGroup returns a page of the group's rules, ordered by created_at
// DESC, id DESC.
func (p *PgSQL) RulesByGroup(ctx context.Context,
	groupID domain.GroupID,
	cursor time.Time,
	limit uint) (storage.GroupRules, error) {
	w := []goqu.Expression{
		goqu.I("group_id").Eq(uuid.UUID(groupID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgRule
	if err := p.Builder.From(rulesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.GroupRules{}, fmt.Errorf("could not fetch group rules from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.GroupRules{
		Rules:      pgRulesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// MatchingRules returns active rules in scope for a completion of the given
// task: rules bound to the task, rules bound to its type and group-wide
// rules.
func (p *PgSQL) MatchingRules(ctx context.Context,
	groupID domain.GroupID,
	taskID domain.TaskID,
	taskType domain.TaskType) ([]domain.Rule, error) {
	var rows []PgRule
	if err := p.Builder.From(rulesTable).
		Where(
			goqu.I("group_id").Eq(uuid.UUID(groupID)),
			goqu.I("active").IsTrue(),
			goqu.I("deleted_at").IsNull(),
			goqu.Or(
				goqu.I("task_id").Eq(uuid.UUID(taskID)),
				goqu.And(
					goqu.I("task_id").IsNull(),
					goqu.I("task_type").Eq(string(taskType)),
				),
				goqu.And(
					goqu.I("task_id").IsNull(),
					goqu.I("task_type").IsNull(),
				),
			),
		).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch matching rules from pg: %w", err)
	}

	return pgRulesToDomain(rows), nil
}
