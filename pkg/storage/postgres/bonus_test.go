package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
	"github.com/mserjo/bossy/pkg/storage/postgres"
)

func createTestAccount(t *testing.T, pgSQL *postgres.PgSQL, group *domain.Group, user *domain.User) *domain.Account {
	t.Helper()

	account, err := pgSQL.StoreAccount(context.Background(), domain.Account{
		UserID:   user.ID,
		GroupID:  group.ID,
		Currency: group.Currency,
	})
	require.NoError(t, err)
	require.NotNil(t, account)

	return account
}

func TestPgSQL_Accounts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)
	account := createTestAccount(t, pgSQL, group, owner)

	require.Zero(t, account.Balance)
	require.Zero(t, account.Earned)
	require.Equal(t, group.Currency, account.Currency)

	t.Run("one account per user per group", func(t *testing.T) {
		_, err := pgSQL.StoreAccount(ctx, domain.Account{
			UserID:   owner.ID,
			GroupID:  group.ID,
			Currency: group.Currency,
		})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("lock requires a transaction", func(t *testing.T) {
		_, err := pgSQL.AccountForUpdate(ctx, group.ID, owner.ID)
		require.ErrorIs(t, err, storage.ErrNotInTx)
	})

	t.Run("balance update inside tx", func(t *testing.T) {
		err := pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
			locked, err := tx.AccountForUpdate(ctx, group.ID, owner.ID)
			require.NoError(t, err)
			require.NotNil(t, locked)

			return tx.UpdateAccountBalance(ctx, locked.ID, 42, 42, time.Now())
		})
		require.NoError(t, err)

		got, err := pgSQL.Account(ctx, group.ID, owner.ID)
		require.NoError(t, err)
		require.EqualValues(t, 42, got.Balance)
		require.EqualValues(t, 42, got.Earned)
		require.False(t, got.LastTransactionAt.IsZero())
	})
}

func TestPgSQL_TransactionsByAccount_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)
	account := createTestAccount(t, pgSQL, group, owner)

	for i := range 5 {
		_, err := pgSQL.StoreTransaction(ctx, domain.Transaction{
			AccountID:    account.ID,
			Type:         domain.TransactionCredit,
			Amount:       int64(i + 1),
			BalanceAfter: int64(i + 1),
		})
		require.NoError(t, err)

		// spread created_at so cursors are unambiguous
		_, err = pgSQL.DB.ExecContext(ctx,
			"UPDATE transactions SET created_at = now() - ($1 || ' minutes')::interval WHERE amount = $2",
			5-i, i+1)
		require.NoError(t, err)
	}

	p1, err := pgSQL.TransactionsByAccount(ctx, account.ID, time.Time{}, 3)
	require.NoError(t, err)
	require.Len(t, p1.Transactions, 3)
	require.NotNil(t, p1.NextCursor)
	// newest first
	require.EqualValues(t, 5, p1.Transactions[0].Amount)

	p2, err := pgSQL.TransactionsByAccount(ctx, account.ID, *p1.NextCursor, 3)
	require.NoError(t, err)
	require.Len(t, p2.Transactions, 2)
	require.Nil(t, p2.NextCursor)
}

func TestPgSQL_EarnedSince(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createTestUser(t, pgSQL, "alice")
	bob := createTestUser(t, pgSQL, "bob")
	group := createTestGroup(t, pgSQL, alice)
	aliceAccount := createTestAccount(t, pgSQL, group, alice)
	bobAccount := createTestAccount(t, pgSQL, group, bob)

	store := func(accountID domain.AccountID, txType domain.TransactionType, amount int64) {
		_, err := pgSQL.StoreTransaction(ctx, domain.Transaction{
			AccountID:    accountID,
			Type:         txType,
			Amount:       amount,
			BalanceAfter: amount,
		})
		require.NoError(t, err)
	}

	store(aliceAccount.ID, domain.TransactionCredit, 10)
	// manual adjustments and debits never count towards earned points
	store(aliceAccount.ID, domain.TransactionAdjustUp, 5)
	store(aliceAccount.ID, domain.TransactionDebit, 100)
	store(bobAccount.ID, domain.TransactionCredit, 20)

	entries, err := pgSQL.EarnedSince(ctx, group.ID, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, bob.ID, entries[0].UserID)
	require.EqualValues(t, 20, entries[0].Points)
	require.Equal(t, 1, entries[0].Rank)
	require.Equal(t, alice.ID, entries[1].UserID)
	require.EqualValues(t, 10, entries[1].Points)
	require.Equal(t, 2, entries[1].Rank)

	t.Run("window excludes old entries", func(t *testing.T) {
		entries, err := pgSQL.EarnedSince(ctx, group.ID, time.Now().Add(time.Hour), 10)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}

func TestPgSQL_MatchingRules(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createTestUser(t, pgSQL, "owner")
	group := createTestGroup(t, pgSQL, owner)

	task := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "task", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})
	otherTask := storeTestTask(t, pgSQL, domain.Task{
		GroupID: group.ID, Title: "other", Type: domain.TaskTypeRegular,
		Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone, CreatedBy: owner.ID,
	})

	storeRule := func(rule domain.Rule) *domain.Rule {
		rule.GroupID = group.ID
		rule.Active = true
		stored, err := pgSQL.StoreRule(ctx, rule)
		require.NoError(t, err)

		return stored
	}

	taskType := domain.TaskTypeRegular
	otherType := domain.TaskTypePenalty

	taskRule := storeRule(domain.Rule{Name: "task bound", TaskID: &task.ID, Amount: 10, Condition: domain.RuleAlways})
	typeRule := storeRule(domain.Rule{Name: "type bound", TaskType: &taskType, Amount: 5, Condition: domain.RuleAlways})
	groupRule := storeRule(domain.Rule{Name: "group wide", Amount: 1, Condition: domain.RuleAlways})
	storeRule(domain.Rule{Name: "other task", TaskID: &otherTask.ID, Amount: 99, Condition: domain.RuleAlways})
	storeRule(domain.Rule{Name: "other type", TaskType: &otherType, Amount: 99, Condition: domain.RuleAlways})

	inactive := storeRule(domain.Rule{Name: "inactive", Amount: 99, Condition: domain.RuleAlways})
	active := false
	_, err := pgSQL.UpdateRuleByID(ctx, inactive.ID, storage.RuleUpdates{Active: &active})
	require.NoError(t, err)

	rules, err := pgSQL.MatchingRules(ctx, group.ID, task.ID, task.Type)
	require.NoError(t, err)
	require.Len(t, rules, 3)

	ids := make(map[domain.RuleID]bool, len(rules))
	for _, rule := range rules {
		ids[rule.ID] = true
	}
	require.True(t, ids[taskRule.ID])
	require.True(t, ids[typeRule.ID])
	require.True(t, ids[groupRule.ID])
}
