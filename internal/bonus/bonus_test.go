package bonus_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
	mockstorage "github.com/mserjo/bossy/pkg/storage/mock"
)

func newTestBonus(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, bonus.Bonus) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, bonus.New(st)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestBonus_Adjust_Up(t *testing.T) {
	ctrl, st, b := newTestBonus(t)

	actorID := domain.UserID(uuid.New())
	userID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 10, Earned: 100}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AccountForUpdate(gomock.Any(), groupID, userID).Return(&account, nil)
		// manual adjustments change the balance but not the lifetime earned
		tx.EXPECT().UpdateAccountBalance(gomock.Any(), account.ID, int64(15), int64(100), gomock.Any()).Return(nil)
		tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry domain.Transaction) (*domain.Transaction, error) {
				require.Equal(t, domain.TransactionAdjustUp, entry.Type)
				require.EqualValues(t, 5, entry.Amount)
				require.EqualValues(t, 15, entry.BalanceAfter)
				require.NotNil(t, entry.ActorID)
				require.Equal(t, actorID, *entry.ActorID)

				return &entry, nil
			},
		)
	})

	tx, err := b.Adjust(context.Background(), actorID, groupID, userID, 5, true, "well done")
	require.NoError(t, err)
	require.EqualValues(t, 15, tx.BalanceAfter)
}

func TestBonus_Adjust_DownInsufficient(t *testing.T) {
	ctrl, st, b := newTestBonus(t)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 3}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AccountForUpdate(gomock.Any(), groupID, userID).Return(&account, nil)
	})

	_, err := b.Adjust(context.Background(), domain.UserID(uuid.New()), groupID, userID, 5, false, "oops")
	require.ErrorIs(t, err, serrors.ErrInsufficientFunds)
}

func TestBonus_Adjust_InvalidAmount(t *testing.T) {
	_, _, b := newTestBonus(t)

	_, err := b.Adjust(context.Background(),
		domain.UserID(uuid.New()), domain.GroupID(uuid.New()), domain.UserID(uuid.New()), 0, true, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestBonus_CreditTx(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 10, Earned: 10}

	tx.EXPECT().AccountForUpdate(gomock.Any(), groupID, userID).Return(&account, nil)
	// CREDIT grows both balance and lifetime earned
	tx.EXPECT().UpdateAccountBalance(gomock.Any(), account.ID, int64(17), int64(17), gomock.Any()).Return(nil)
	tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry domain.Transaction) (*domain.Transaction, error) {
			return &entry, nil
		},
	)

	stored, err := b.CreditTx(context.Background(), tx, bonus.Entry{
		GroupID: groupID,
		UserID:  userID,
		Type:    domain.TransactionCredit,
		Amount:  7,
	})
	require.NoError(t, err)
	require.EqualValues(t, 17, stored.BalanceAfter)

	t.Run("rejects debit types", func(t *testing.T) {
		_, err := b.CreditTx(context.Background(), tx, bonus.Entry{
			GroupID: groupID,
			UserID:  userID,
			Type:    domain.TransactionDebit,
			Amount:  7,
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("missing account", func(t *testing.T) {
		tx.EXPECT().AccountForUpdate(gomock.Any(), groupID, userID).Return(nil, nil)

		_, err := b.CreditTx(context.Background(), tx, bonus.Entry{
			GroupID: groupID,
			UserID:  userID,
			Type:    domain.TransactionCredit,
			Amount:  7,
		})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestBonus_DebitTx(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 10, Earned: 50}

	tx.EXPECT().AccountForUpdate(gomock.Any(), groupID, userID).Return(&account, nil)
	tx.EXPECT().UpdateAccountBalance(gomock.Any(), account.ID, int64(4), int64(50), gomock.Any()).Return(nil)
	tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry domain.Transaction) (*domain.Transaction, error) {
			return &entry, nil
		},
	)

	stored, err := b.DebitTx(context.Background(), tx, bonus.Entry{
		GroupID: groupID,
		UserID:  userID,
		Type:    domain.TransactionDebit,
		Amount:  6,
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, stored.BalanceAfter)

	t.Run("rejects credit types", func(t *testing.T) {
		_, err := b.DebitTx(context.Background(), tx, bonus.Entry{
			GroupID: groupID,
			UserID:  userID,
			Type:    domain.TransactionRefund,
			Amount:  6,
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestBonus_EnsureAccountTx(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	group := domain.Group{ID: domain.GroupID(uuid.New()), Currency: "stars"}
	userID := domain.UserID(uuid.New())

	t.Run("existing account is returned as-is", func(t *testing.T) {
		existing := domain.Account{ID: domain.AccountID(uuid.New())}
		tx.EXPECT().Account(gomock.Any(), group.ID, userID).Return(&existing, nil)

		account, err := b.EnsureAccountTx(context.Background(), tx, group, userID)
		require.NoError(t, err)
		require.Equal(t, existing.ID, account.ID)
	})

	t.Run("missing account is created with the group currency", func(t *testing.T) {
		tx.EXPECT().Account(gomock.Any(), group.ID, userID).Return(nil, nil)
		tx.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, account domain.Account) (*domain.Account, error) {
				require.Equal(t, userID, account.UserID)
				require.Equal(t, group.ID, account.GroupID)
				require.Equal(t, "stars", account.Currency)

				return &account, nil
			},
		)

		account, err := b.EnsureAccountTx(context.Background(), tx, group, userID)
		require.NoError(t, err)
		require.Equal(t, "stars", account.Currency)
	})
}

func TestBonus_Transactions(t *testing.T) {
	_, st, b := newTestBonus(t)

	groupID := domain.GroupID(uuid.New())
	userID := domain.UserID(uuid.New())
	account := domain.Account{ID: domain.AccountID(uuid.New())}

	cursorTime := time.Now().UTC().Truncate(time.Second)
	next := cursorTime.Add(-time.Hour)

	st.EXPECT().Account(gomock.Any(), groupID, userID).Return(&account, nil)
	st.EXPECT().TransactionsByAccount(gomock.Any(), account.ID, cursorTime, uint(10)).Return(
		storage.AccountTransactions{
			Transactions: []domain.Transaction{{Amount: 5}},
			NextCursor:   &next,
		}, nil)

	entries, nextCursor, err := b.Transactions(context.Background(),
		groupID, userID, cursorTime.Format(time.RFC3339), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, next.Format(time.RFC3339), nextCursor)

	t.Run("invalid cursor", func(t *testing.T) {
		st.EXPECT().Account(gomock.Any(), groupID, userID).Return(&account, nil)

		_, _, err := b.Transactions(context.Background(), groupID, userID, "not-a-time", 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("missing account", func(t *testing.T) {
		st.EXPECT().Account(gomock.Any(), groupID, userID).Return(nil, nil)

		_, _, err := b.Transactions(context.Background(), groupID, userID, "", 10)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestBonus_CreateRule_Validation(t *testing.T) {
	_, st, b := newTestBonus(t)
	ctx := context.Background()
	groupID := domain.GroupID(uuid.New())

	_, err := b.CreateRule(ctx, groupID, bonus.RuleInput{Name: "zero", Amount: 0, Condition: domain.RuleAlways})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	taskID := domain.TaskID(uuid.New())
	taskType := domain.TaskTypeRegular
	_, err = b.CreateRule(ctx, groupID, bonus.RuleInput{
		Name:      "both scopes",
		TaskID:    &taskID,
		TaskType:  &taskType,
		Amount:    5,
		Condition: domain.RuleAlways,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = b.CreateRule(ctx, groupID, bonus.RuleInput{
		Name:      "early without hours",
		Amount:    5,
		Condition: domain.RuleEarly,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().StoreRule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rule domain.Rule) (*domain.Rule, error) {
			require.True(t, rule.Active)
			require.Equal(t, groupID, rule.GroupID)

			return &rule, nil
		},
	)

	rule, err := b.CreateRule(ctx, groupID, bonus.RuleInput{Name: "ok", Amount: 5, Condition: domain.RuleAlways})
	require.NoError(t, err)
	require.True(t, rule.Active)
}

// expectAward wires the locked credit path for a single award of the given
// amount against an account holding balance 100.
func expectAward(t *testing.T, tx *mockstorage.MockAllStorage, amount int64) {
	t.Helper()

	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 100, Earned: 100}
	tx.EXPECT().AccountForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&account, nil)
	tx.EXPECT().UpdateAccountBalance(gomock.Any(),
		account.ID, 100+amount, 100+amount, gomock.Any()).Return(nil)
	tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry domain.Transaction) (*domain.Transaction, error) {
			require.EqualValues(t, amount, entry.Amount)

			return &entry, nil
		},
	)
}

func TestBonus_AwardForCompletionTx_FixedPoints(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	task := domain.Task{
		ID:      domain.TaskID(uuid.New()),
		GroupID: domain.GroupID(uuid.New()),
		Type:    domain.TaskTypeRegular,
		Points:  7,
	}
	completion := domain.Completion{ID: domain.CompletionID(uuid.New()), UserID: domain.UserID(uuid.New())}

	// fixed points bypass the rule engine entirely
	expectAward(t, tx, 7)

	stored, err := b.AwardForCompletionTx(context.Background(), tx, task, completion)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.CompletionID)
	require.Equal(t, completion.ID, *stored.CompletionID)
}

func TestBonus_AwardForCompletionTx_NoRuleNoAward(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	task := domain.Task{ID: domain.TaskID(uuid.New()), GroupID: domain.GroupID(uuid.New()), Type: domain.TaskTypeRegular}
	completion := domain.Completion{UserID: domain.UserID(uuid.New())}

	tx.EXPECT().MatchingRules(gomock.Any(), task.GroupID, task.ID, task.Type).Return(nil, nil)

	stored, err := b.AwardForCompletionTx(context.Background(), tx, task, completion)
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestBonus_AwardForCompletionTx_RuleConditions(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name        string
		rules       []domain.Rule
		submittedAt time.Time
		want        int64
		// approvedInGroup/approvedOfTask are the counts returned when a
		// FIRST_* rule asks for them.
		approvedInGroup int64
		approvedOfTask  int64
	}{
		{
			name:        "ALWAYS applies",
			rules:       []domain.Rule{{Amount: 5, Condition: domain.RuleAlways}},
			submittedAt: due.Add(time.Hour),
			want:        5,
		},
		{
			name: "ON_TIME met before the due date",
			rules: []domain.Rule{
				{Amount: 3, Condition: domain.RuleAlways},
				{Amount: 8, Condition: domain.RuleOnTime},
			},
			submittedAt: due.Add(-time.Hour),
			want:        8,
		},
		{
			name: "ON_TIME missed falls back to ALWAYS",
			rules: []domain.Rule{
				{Amount: 3, Condition: domain.RuleAlways},
				{Amount: 8, Condition: domain.RuleOnTime},
			},
			submittedAt: due.Add(time.Hour),
			want:        3,
		},
		{
			name: "EARLY needs the configured margin",
			rules: []domain.Rule{
				{Amount: 10, Condition: domain.RuleEarly, MinHoursEarly: 12},
				{Amount: 2, Condition: domain.RuleAlways},
			},
			submittedAt: due.Add(-13 * time.Hour),
			want:        10,
		},
		{
			name: "EARLY margin not reached",
			rules: []domain.Rule{
				{Amount: 10, Condition: domain.RuleEarly, MinHoursEarly: 12},
				{Amount: 2, Condition: domain.RuleAlways},
			},
			submittedAt: due.Add(-time.Hour),
			want:        2,
		},
		{
			name:            "FIRST_COMPLETION for a first-timer",
			rules:           []domain.Rule{{Amount: 20, Condition: domain.RuleFirstCompletion}},
			submittedAt:     due.Add(-time.Hour),
			approvedInGroup: 1,
			want:            20,
		},
		{
			name:            "FIRST_COMPLETION for a veteran matches nothing",
			rules:           []domain.Rule{{Amount: 20, Condition: domain.RuleFirstCompletion}},
			submittedAt:     due.Add(-time.Hour),
			approvedInGroup: 4,
			want:            0,
		},
		{
			name:           "FIRST_TASK_COMPLETION",
			rules:          []domain.Rule{{Amount: 15, Condition: domain.RuleFirstTaskCompletion}},
			submittedAt:    due.Add(-time.Hour),
			approvedOfTask: 1,
			want:           15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _, b := newTestBonus(t)
			tx := mockstorage.NewMockAllStorage(ctrl)

			task := domain.Task{
				ID:      domain.TaskID(uuid.New()),
				GroupID: domain.GroupID(uuid.New()),
				Type:    domain.TaskTypeRegular,
				Title:   "mow the lawn",
				DueAt:   due,
			}
			completion := domain.Completion{
				ID:          domain.CompletionID(uuid.New()),
				UserID:      domain.UserID(uuid.New()),
				SubmittedAt: tt.submittedAt,
			}

			tx.EXPECT().MatchingRules(gomock.Any(), task.GroupID, task.ID, task.Type).Return(tt.rules, nil)
			if tt.approvedInGroup > 0 {
				tx.EXPECT().ApprovedCompletionCount(gomock.Any(), task.GroupID, completion.UserID).
					Return(tt.approvedInGroup, nil)
			}
			if tt.approvedOfTask > 0 {
				tx.EXPECT().ApprovedTaskCompletionCount(gomock.Any(), task.ID, completion.UserID).
					Return(tt.approvedOfTask, nil)
			}
			if tt.want > 0 {
				expectAward(t, tx, tt.want)
			}

			stored, err := b.AwardForCompletionTx(context.Background(), tx, task, completion)
			require.NoError(t, err)
			if tt.want == 0 {
				require.Nil(t, stored)
			} else {
				require.NotNil(t, stored)
			}
		})
	}
}

func TestBonus_AwardForCompletionTx_TieBreaking(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	task := domain.Task{
		ID:      domain.TaskID(uuid.New()),
		GroupID: domain.GroupID(uuid.New()),
		Type:    domain.TaskTypeRegular,
	}
	completion := domain.Completion{ID: domain.CompletionID(uuid.New()), UserID: domain.UserID(uuid.New())}

	taskBound := task.ID
	rules := []domain.Rule{
		// same amount: the task-bound rule is more specific and must win
		{Name: "group wide", Amount: 5, Condition: domain.RuleAlways},
		{Name: "task bound", Amount: 5, Condition: domain.RuleAlways, TaskID: &taskBound},
	}

	tx.EXPECT().MatchingRules(gomock.Any(), task.GroupID, task.ID, task.Type).Return(rules, nil)
	expectAward(t, tx, 5)

	stored, err := b.AwardForCompletionTx(context.Background(), tx, task, completion)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestBonus_AwardForCompletionTx_PenaltyDrainsToZero(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	task := domain.Task{
		ID:      domain.TaskID(uuid.New()),
		GroupID: domain.GroupID(uuid.New()),
		Type:    domain.TaskTypePenalty,
		Title:   "broke curfew",
		Points:  50,
	}
	completion := domain.Completion{ID: domain.CompletionID(uuid.New()), UserID: domain.UserID(uuid.New())}

	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 30, Earned: 80}

	// first attempt fails the balance check under the lock
	tx.EXPECT().AccountForUpdate(gomock.Any(), task.GroupID, completion.UserID).Return(&account, nil)
	// the fallback re-reads the balance and debits exactly what is left
	tx.EXPECT().Account(gomock.Any(), task.GroupID, completion.UserID).Return(&account, nil)
	tx.EXPECT().AccountForUpdate(gomock.Any(), task.GroupID, completion.UserID).Return(&account, nil)
	tx.EXPECT().UpdateAccountBalance(gomock.Any(), account.ID, int64(0), int64(80), gomock.Any()).Return(nil)
	tx.EXPECT().StoreTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry domain.Transaction) (*domain.Transaction, error) {
			require.Equal(t, domain.TransactionDebit, entry.Type)
			require.EqualValues(t, 30, entry.Amount)
			require.EqualValues(t, 0, entry.BalanceAfter)

			return &entry, nil
		},
	)

	stored, err := b.AwardForCompletionTx(context.Background(), tx, task, completion)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.EqualValues(t, 0, stored.BalanceAfter)
}

func TestBonus_AwardForCompletionTx_PenaltyEmptyAccountIsNoop(t *testing.T) {
	ctrl, _, b := newTestBonus(t)
	tx := mockstorage.NewMockAllStorage(ctrl)

	task := domain.Task{
		ID:      domain.TaskID(uuid.New()),
		GroupID: domain.GroupID(uuid.New()),
		Type:    domain.TaskTypePenalty,
		Points:  50,
	}
	completion := domain.Completion{ID: domain.CompletionID(uuid.New()), UserID: domain.UserID(uuid.New())}

	account := domain.Account{ID: domain.AccountID(uuid.New()), Balance: 0}

	tx.EXPECT().AccountForUpdate(gomock.Any(), task.GroupID, completion.UserID).Return(&account, nil)
	tx.EXPECT().Account(gomock.Any(), task.GroupID, completion.UserID).Return(&account, nil)

	stored, err := b.AwardForCompletionTx(context.Background(), tx, task, completion)
	require.NoError(t, err)
	require.Nil(t, stored)
}
