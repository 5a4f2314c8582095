package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockbonus "github.com/mserjo/bossy/internal/bonus/mock"
	"github.com/mserjo/bossy/internal/gamification"
	mockgamification "github.com/mserjo/bossy/internal/gamification/mock"
	mockgroup "github.com/mserjo/bossy/internal/group/mock"
	mocknotification "github.com/mserjo/bossy/internal/notification/mock"
	"github.com/mserjo/bossy/internal/task"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
	mockstorage "github.com/mserjo/bossy/pkg/storage/mock"
)

type taskMocks struct {
	storage      *mockstorage.MockStorage
	groups       *mockgroup.MockGroups
	bonus        *mockbonus.MockBonus
	gamification *mockgamification.MockGamification
	notifier     *mocknotification.MockNotifier
}

func newTestTasks(t *testing.T) (*gomock.Controller, taskMocks, task.Tasks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := taskMocks{
		storage:      mockstorage.NewMockStorage(ctrl),
		groups:       mockgroup.NewMockGroups(ctrl),
		bonus:        mockbonus.NewMockBonus(ctrl),
		gamification: mockgamification.NewMockGamification(ctrl),
		notifier:     mocknotification.NewMockNotifier(ctrl),
	}
	svc := task.New(mocks.storage, mocks.groups, mocks.bonus, mocks.gamification, mocks.notifier)

	return ctrl, mocks, svc
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

func membership(groupID domain.GroupID, userID domain.UserID, role domain.GroupRole) *domain.Membership {
	return &domain.Membership{GroupID: groupID, UserID: userID, Role: role}
}

func TestTasks_Create(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	actorID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())

	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), groupID, actorID).
		Return(membership(groupID, actorID, domain.GroupRoleAdmin), nil)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTasks(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows ...domain.Task) ([]domain.Task, error) {
				require.Len(t, rows, 1)
				stored := rows[0]
				require.Equal(t, "Wash dishes", stored.Title)
				// unset fields fall back to defaults
				require.Equal(t, domain.TaskTypeRegular, stored.Type)
				require.Equal(t, domain.TaskPriorityMedium, stored.Priority)
				require.Equal(t, domain.RecurrenceNone, stored.Recurrence)
				require.Equal(t, domain.TaskStatusOpen, stored.Status)
				require.Equal(t, actorID, stored.CreatedBy)

				stored.ID = domain.TaskID(uuid.New())

				return []domain.Task{stored}, nil
			},
		)
	})

	created, err := svc.Create(context.Background(), actorID, groupID, task.CreateInput{Title: "Wash dishes"})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusOpen, created.Status)
}

func TestTasks_Create_WithAssignee(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	actorID := domain.UserID(uuid.New())
	assigneeID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	taskID := domain.TaskID(uuid.New())

	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), groupID, actorID).
		Return(membership(groupID, actorID, domain.GroupRoleOwner), nil)
	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), groupID, assigneeID).
		Return(membership(groupID, assigneeID, domain.GroupRoleMember), nil)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTasks(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows ...domain.Task) ([]domain.Task, error) {
				stored := rows[0]
				stored.ID = taskID

				return []domain.Task{stored}, nil
			},
		)
		tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
				require.Equal(t, domain.TaskStatusInProgress, updates.Status)
				require.Equal(t, domain.TaskStatusOpen, updates.FromStatus)
				require.NotNil(t, updates.AssigneeID)
				require.Equal(t, assigneeID, **updates.AssigneeID)

				return &domain.Task{ID: id, GroupID: groupID, Title: "Walk the dog",
					Status: domain.TaskStatusInProgress, AssigneeID: *updates.AssigneeID}, nil
			},
		)
		tx.EXPECT().StoreCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, completion domain.Completion) (*domain.Completion, error) {
				require.Equal(t, taskID, completion.TaskID)
				require.Equal(t, assigneeID, completion.UserID)
				require.Equal(t, domain.CompletionStatusInProgress, completion.Status)

				return &completion, nil
			},
		)
		mocks.notifier.EXPECT().NotifyTx(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, notifications ...domain.Notification) error {
				require.Len(t, notifications, 1)
				require.Equal(t, assigneeID, notifications[0].UserID)
				require.Equal(t, domain.NotificationTaskAssigned, notifications[0].Type)

				return nil
			},
		)
	})

	created, err := svc.Create(context.Background(), actorID, groupID, task.CreateInput{
		Title:      "Walk the dog",
		AssigneeID: &assigneeID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusInProgress, created.Status)
}

func TestTasks_Create_Validation(t *testing.T) {
	_, _, svc := newTestTasks(t)

	actorID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	assigneeID := domain.UserID(uuid.New())

	for name, input := range map[string]task.CreateInput{
		"missing title":           {},
		"negative points":         {Title: "t", Points: -5},
		"recurring with assignee": {Title: "t", Recurrence: domain.RecurrenceDaily, AssigneeID: &assigneeID},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), actorID, groupID, input)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestTasks_Create_Proposals(t *testing.T) {
	actorID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())

	t.Run("members can propose when the group allows it", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		mocks.storage.EXPECT().GroupByID(gomock.Any(), groupID).
			Return(&domain.Group{ID: groupID, AllowProposals: true}, nil)

		expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreTasks(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rows ...domain.Task) ([]domain.Task, error) {
					return rows, nil
				},
			)
		})

		_, err := svc.Create(context.Background(), actorID, groupID, task.CreateInput{Title: "Proposal"})
		require.NoError(t, err)
	})

	t.Run("members cannot create tasks otherwise", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		mocks.storage.EXPECT().GroupByID(gomock.Any(), groupID).
			Return(&domain.Group{ID: groupID, AllowProposals: false}, nil)

		_, err := svc.Create(context.Background(), actorID, groupID, task.CreateInput{Title: "Proposal"})
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("members never create penalties", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		mocks.storage.EXPECT().GroupByID(gomock.Any(), groupID).
			Return(&domain.Group{ID: groupID, AllowProposals: true}, nil)

		_, err := svc.Create(context.Background(), actorID, groupID, task.CreateInput{
			Title: "Broke a plate",
			Type:  domain.TaskTypePenalty,
		})
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestTasks_Take(t *testing.T) {
	actorID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	taskID := domain.TaskID(uuid.New())

	open := domain.Task{ID: taskID, GroupID: groupID, Title: "Open task", Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone}

	t.Run("claims an open task", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&open, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)

		expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, gomock.Any()).DoAndReturn(
				func(_ context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
					require.Equal(t, domain.TaskStatusInProgress, updates.Status)
					require.Equal(t, domain.TaskStatusOpen, updates.FromStatus)
					require.Equal(t, actorID, **updates.AssigneeID)

					updated := open
					updated.Status = updates.Status
					updated.AssigneeID = *updates.AssigneeID

					return &updated, nil
				},
			)
			tx.EXPECT().StoreCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, completion domain.Completion) (*domain.Completion, error) {
					return &completion, nil
				},
			)
		})

		updated, err := svc.Take(context.Background(), actorID, taskID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusInProgress, updated.Status)
	})

	t.Run("templates cannot be taken", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		template := open
		template.Recurrence = domain.RecurrenceWeekly

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&template, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		expectWithTx(t, ctrl, mocks.storage, nil)

		_, err := svc.Take(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("a concurrent claim loses", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&open, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)

		expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
			// someone else claimed the task after the lookup, so the guarded
			// update matches nothing and no completion is opened
			tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, gomock.Any()).Return(nil, nil)
		})

		_, err := svc.Take(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("non-open tasks cannot be taken", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		busy := open
		busy.Status = domain.TaskStatusInProgress

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&busy, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		expectWithTx(t, ctrl, mocks.storage, nil)

		_, err := svc.Take(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(nil, nil)

		_, err := svc.Take(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestTasks_Assign(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	actorID := domain.UserID(uuid.New())
	assigneeID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	taskID := domain.TaskID(uuid.New())

	open := domain.Task{ID: taskID, GroupID: groupID, Title: "Chore", Status: domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceNone}

	mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&open, nil)
	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), groupID, actorID).
		Return(membership(groupID, actorID, domain.GroupRoleAdmin), nil)
	mocks.groups.EXPECT().
		RequireAdmin(gomock.Any(), groupID, actorID).
		Return(membership(groupID, actorID, domain.GroupRoleAdmin), nil)
	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), groupID, assigneeID).
		Return(membership(groupID, assigneeID, domain.GroupRoleMember), nil)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
				updated := open
				updated.Status = updates.Status
				updated.AssigneeID = *updates.AssigneeID

				return &updated, nil
			},
		)
		tx.EXPECT().StoreCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, completion domain.Completion) (*domain.Completion, error) {
				require.Equal(t, assigneeID, completion.UserID)

				return &completion, nil
			},
		)
		mocks.notifier.EXPECT().NotifyTx(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, notifications ...domain.Notification) error {
				require.Len(t, notifications, 1)
				require.Equal(t, assigneeID, notifications[0].UserID)
				require.Equal(t, domain.NotificationTaskAssigned, notifications[0].Type)

				return nil
			},
		)
	})

	updated, err := svc.Assign(context.Background(), actorID, taskID, assigneeID)
	require.NoError(t, err)
	require.Equal(t, assigneeID, *updated.AssigneeID)
}

func TestTasks_Submit(t *testing.T) {
	actorID := domain.UserID(uuid.New())
	creatorID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	taskID := domain.TaskID(uuid.New())

	inProgress := domain.Task{ID: taskID, GroupID: groupID, Title: "Chore",
		Status: domain.TaskStatusInProgress, AssigneeID: &actorID, CreatedBy: creatorID}

	t.Run("moves the task into review", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		completion := domain.Completion{ID: domain.CompletionID(uuid.New()), TaskID: taskID,
			UserID: actorID, Status: domain.CompletionStatusInProgress}

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&inProgress, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		mocks.storage.EXPECT().ActiveCompletionByTask(gomock.Any(), taskID).Return(&completion, nil)

		expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UpdateCompletionByID(gomock.Any(), completion.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.CompletionID, updates storage.CompletionUpdates) (*domain.Completion, error) {
					require.Equal(t, domain.CompletionStatusPendingReview, updates.Status)
					require.NotNil(t, updates.SubmittedAt)

					return &completion, nil
				},
			)
			tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, storage.TaskUpdates{
				Status:     domain.TaskStatusPendingReview,
				FromStatus: domain.TaskStatusInProgress,
			}).DoAndReturn(
				func(_ context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
					updated := inProgress
					updated.Status = updates.Status

					return &updated, nil
				},
			)
			mocks.notifier.EXPECT().NotifyTx(gomock.Any(), tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ storage.AllStorage, notifications ...domain.Notification) error {
					require.Len(t, notifications, 1)
					require.Equal(t, creatorID, notifications[0].UserID)
					require.Equal(t, domain.NotificationTaskSubmitted, notifications[0].Type)

					return nil
				},
			)
		})

		updated, err := svc.Submit(context.Background(), actorID, taskID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusPendingReview, updated.Status)
	})

	t.Run("a concurrent transition aborts the submit", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		completion := domain.Completion{ID: domain.CompletionID(uuid.New()), TaskID: taskID,
			UserID: actorID, Status: domain.CompletionStatusInProgress}

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&inProgress, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		mocks.storage.EXPECT().ActiveCompletionByTask(gomock.Any(), taskID).Return(&completion, nil)

		expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UpdateCompletionByID(gomock.Any(), completion.ID, gomock.Any()).
				Return(&completion, nil)
			tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, gomock.Any()).Return(nil, nil)
		})

		_, err := svc.Submit(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("only the assignee can submit", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		otherID := domain.UserID(uuid.New())

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&inProgress, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, otherID).
			Return(membership(groupID, otherID, domain.GroupRoleMember), nil)

		_, err := svc.Submit(context.Background(), otherID, taskID)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("task must be in progress", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		open := inProgress
		open.Status = domain.TaskStatusOpen

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&open, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)

		_, err := svc.Submit(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func reviewFixture(reviewerID, assigneeID domain.UserID, groupID domain.GroupID) (domain.Task, domain.Completion) {
	taskID := domain.TaskID(uuid.New())
	pending := domain.Task{ID: taskID, GroupID: groupID, Title: "Chore", Points: 0,
		Type: domain.TaskTypeRegular, Status: domain.TaskStatusPendingReview, AssigneeID: &assigneeID}
	completion := domain.Completion{ID: domain.CompletionID(uuid.New()), TaskID: taskID,
		UserID: assigneeID, Status: domain.CompletionStatusPendingReview}

	return pending, completion
}

func expectReviewLookup(mocks taskMocks, pending domain.Task, completion domain.Completion, reviewerID domain.UserID) {
	mocks.storage.EXPECT().TaskByID(gomock.Any(), pending.ID).Return(&pending, nil)
	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), pending.GroupID, reviewerID).
		Return(membership(pending.GroupID, reviewerID, domain.GroupRoleAdmin), nil)
	mocks.groups.EXPECT().
		RequireAdmin(gomock.Any(), pending.GroupID, reviewerID).
		Return(membership(pending.GroupID, reviewerID, domain.GroupRoleAdmin), nil)
	mocks.storage.EXPECT().ActiveCompletionByTask(gomock.Any(), pending.ID).Return(&completion, nil)
}

func TestTasks_Review_ApprovePaysOutAndNotifies(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	reviewerID := domain.UserID(uuid.New())
	assigneeID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	pending, completion := reviewFixture(reviewerID, assigneeID, groupID)

	expectReviewLookup(mocks, pending, completion, reviewerID)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateCompletionByID(gomock.Any(), completion.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.CompletionID, updates storage.CompletionUpdates) (*domain.Completion, error) {
				require.Equal(t, domain.CompletionStatusApproved, updates.Status)
				require.Equal(t, reviewerID, *updates.ReviewerID)

				approved := completion
				approved.Status = updates.Status

				return &approved, nil
			},
		)
		tx.EXPECT().UpdateTaskByID(gomock.Any(), pending.ID, storage.TaskUpdates{
			Status:     domain.TaskStatusCompleted,
			FromStatus: domain.TaskStatusPendingReview,
		}).DoAndReturn(
			func(_ context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
				updated := pending
				updated.Status = updates.Status

				return &updated, nil
			},
		)
		mocks.bonus.EXPECT().
			AwardForCompletionTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			Return(&domain.Transaction{Type: domain.TransactionCredit, Amount: 25}, nil)
		mocks.gamification.EXPECT().
			OnPointsEarnedTx(gomock.Any(), tx, groupID, assigneeID).
			Return(&gamification.Progress{
				Level:  &domain.Level{Name: "Expert"},
				Badges: []domain.Badge{{Name: "Streak"}},
			}, nil)
		mocks.notifier.EXPECT().NotifyTx(gomock.Any(), tx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, notifications ...domain.Notification) error {
				require.Len(t, notifications, 4)
				require.Equal(t, domain.NotificationTaskReviewed, notifications[0].Type)
				require.Equal(t, domain.NotificationBonusAwarded, notifications[1].Type)
				require.Equal(t, domain.NotificationLevelUp, notifications[2].Type)
				require.Equal(t, domain.NotificationBadgeAwarded, notifications[3].Type)
				for _, n := range notifications {
					require.Equal(t, assigneeID, n.UserID)
				}

				return nil
			},
		)
	})

	updated, err := svc.Review(context.Background(), reviewerID, pending.ID, true, "nice work")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, updated.Status)
}

func TestTasks_Review_ApprovePenalty(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	reviewerID := domain.UserID(uuid.New())
	assigneeID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	pending, completion := reviewFixture(reviewerID, assigneeID, groupID)
	pending.Type = domain.TaskTypePenalty

	expectReviewLookup(mocks, pending, completion, reviewerID)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateCompletionByID(gomock.Any(), completion.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.CompletionID, updates storage.CompletionUpdates) (*domain.Completion, error) {
				approved := completion
				approved.Status = updates.Status

				return &approved, nil
			},
		)
		tx.EXPECT().UpdateTaskByID(gomock.Any(), pending.ID, gomock.Any()).
			Return(&domain.Task{ID: pending.ID, Status: domain.TaskStatusCompleted}, nil)
		mocks.bonus.EXPECT().
			AwardForCompletionTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
			Return(&domain.Transaction{Type: domain.TransactionDebit, Amount: 10}, nil)
		// penalties do not trigger level or badge evaluation
		mocks.notifier.EXPECT().NotifyTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, notifications ...domain.Notification) error {
				require.Len(t, notifications, 2)
				require.Equal(t, domain.NotificationTaskReviewed, notifications[0].Type)
				require.Equal(t, domain.NotificationPenaltyApplied, notifications[1].Type)

				return nil
			},
		)
	})

	_, err := svc.Review(context.Background(), reviewerID, pending.ID, true, "")
	require.NoError(t, err)
}

func TestTasks_Review_RejectReopensTask(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	reviewerID := domain.UserID(uuid.New())
	assigneeID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	pending, completion := reviewFixture(reviewerID, assigneeID, groupID)

	expectReviewLookup(mocks, pending, completion, reviewerID)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateCompletionByID(gomock.Any(), completion.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.CompletionID, updates storage.CompletionUpdates) (*domain.Completion, error) {
				require.Equal(t, domain.CompletionStatusRejected, updates.Status)
				require.Equal(t, "do it again", *updates.ReviewNote)

				return &completion, nil
			},
		)
		tx.EXPECT().StoreCompletion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fresh domain.Completion) (*domain.Completion, error) {
				require.Equal(t, pending.ID, fresh.TaskID)
				require.Equal(t, assigneeID, fresh.UserID)
				require.Equal(t, domain.CompletionStatusInProgress, fresh.Status)

				return &fresh, nil
			},
		)
		tx.EXPECT().UpdateTaskByID(gomock.Any(), pending.ID, storage.TaskUpdates{
			Status:     domain.TaskStatusInProgress,
			FromStatus: domain.TaskStatusPendingReview,
		}).DoAndReturn(
			func(_ context.Context, id domain.TaskID, updates storage.TaskUpdates) (*domain.Task, error) {
				updated := pending
				updated.Status = updates.Status

				return &updated, nil
			},
		)
		mocks.notifier.EXPECT().NotifyTx(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ storage.AllStorage, notifications ...domain.Notification) error {
				require.Len(t, notifications, 1)
				require.Equal(t, domain.NotificationTaskReviewed, notifications[0].Type)
				require.Equal(t, "do it again", notifications[0].Body)

				return nil
			},
		)
	})

	updated, err := svc.Review(context.Background(), reviewerID, pending.ID, false, "do it again")
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusInProgress, updated.Status)
}

func TestTasks_Review_RejectRequiresNote(t *testing.T) {
	_, mocks, svc := newTestTasks(t)

	reviewerID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	pending, _ := reviewFixture(reviewerID, domain.UserID(uuid.New()), groupID)

	mocks.storage.EXPECT().TaskByID(gomock.Any(), pending.ID).Return(&pending, nil)
	mocks.groups.EXPECT().
		RequireMember(gomock.Any(), groupID, reviewerID).
		Return(membership(groupID, reviewerID, domain.GroupRoleAdmin), nil)
	mocks.groups.EXPECT().
		RequireAdmin(gomock.Any(), groupID, reviewerID).
		Return(membership(groupID, reviewerID, domain.GroupRoleAdmin), nil)

	_, err := svc.Review(context.Background(), reviewerID, pending.ID, false, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTasks_Cancel(t *testing.T) {
	actorID := domain.UserID(uuid.New())
	groupID := domain.GroupID(uuid.New())
	taskID := domain.TaskID(uuid.New())

	t.Run("assignee cancels their own task", func(t *testing.T) {
		ctrl, mocks, svc := newTestTasks(t)

		inProgress := domain.Task{ID: taskID, GroupID: groupID,
			Status: domain.TaskStatusInProgress, AssigneeID: &actorID}
		completion := domain.Completion{ID: domain.CompletionID(uuid.New()), TaskID: taskID,
			UserID: actorID, Status: domain.CompletionStatusInProgress}

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&inProgress, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)

		expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ActiveCompletionByTask(gomock.Any(), taskID).Return(&completion, nil)
			tx.EXPECT().UpdateCompletionByID(gomock.Any(), completion.ID, storage.CompletionUpdates{
				Status: domain.CompletionStatusCancelled,
			}).Return(&completion, nil)
			tx.EXPECT().UpdateTaskByID(gomock.Any(), taskID, storage.TaskUpdates{
				Status:     domain.TaskStatusCancelled,
				FromStatus: domain.TaskStatusInProgress,
			}).Return(&domain.Task{ID: taskID, Status: domain.TaskStatusCancelled}, nil)
		})

		updated, err := svc.Cancel(context.Background(), actorID, taskID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatusCancelled, updated.Status)
	})

	t.Run("cancelling someone else's task requires an administrative role", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		otherID := domain.UserID(uuid.New())
		inProgress := domain.Task{ID: taskID, GroupID: groupID,
			Status: domain.TaskStatusInProgress, AssigneeID: &otherID}

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&inProgress, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleMember), nil)
		mocks.groups.EXPECT().
			RequireAdmin(gomock.Any(), groupID, actorID).
			Return(nil, serrors.With(serrors.ErrForbidden, "administrative role required"))

		_, err := svc.Cancel(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("completed tasks cannot be cancelled", func(t *testing.T) {
		_, mocks, svc := newTestTasks(t)

		completed := domain.Task{ID: taskID, GroupID: groupID, Status: domain.TaskStatusCompleted}

		mocks.storage.EXPECT().TaskByID(gomock.Any(), taskID).Return(&completed, nil)
		mocks.groups.EXPECT().
			RequireMember(gomock.Any(), groupID, actorID).
			Return(membership(groupID, actorID, domain.GroupRoleAdmin), nil)

		_, err := svc.Cancel(context.Background(), actorID, taskID)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestTasks_SpawnDueInstances(t *testing.T) {
	ctrl, mocks, svc := newTestTasks(t)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	groupID := domain.GroupID(uuid.New())
	template := domain.Task{
		ID:         domain.TaskID(uuid.New()),
		GroupID:    groupID,
		Title:      "Take out the trash",
		Type:       domain.TaskTypeRegular,
		Priority:   domain.TaskPriorityMedium,
		Points:     5,
		Status:     domain.TaskStatusOpen,
		Recurrence: domain.RecurrenceDaily,
		CreatedBy:  domain.UserID(uuid.New()),
	}

	mocks.storage.EXPECT().DueTemplates(gomock.Any(), now, uint(50)).Return([]domain.Task{template}, nil)

	expectWithTx(t, ctrl, mocks.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTasks(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows ...domain.Task) ([]domain.Task, error) {
				require.Len(t, rows, 1)
				instance := rows[0]
				require.Equal(t, template.Title, instance.Title)
				require.Equal(t, domain.RecurrenceNone, instance.Recurrence)
				require.Equal(t, domain.TaskStatusOpen, instance.Status)
				// daily instances come due one interval after the spawn
				require.Equal(t, now.Add(24*time.Hour), instance.DueAt)
				require.NotNil(t, instance.TemplateID)
				require.Equal(t, template.ID, *instance.TemplateID)

				return rows, nil
			},
		)
		tx.EXPECT().UpdateTaskByID(gomock.Any(), template.ID, storage.TaskUpdates{
			LastSpawnedAt: &now,
		}).Return(&template, nil)
	})

	spawned, err := svc.SpawnDueInstances(context.Background(), now, 50)
	require.NoError(t, err)
	require.Equal(t, 1, spawned)
}

func TestTasks_ExpireOverdue(t *testing.T) {
	_, mocks, svc := newTestTasks(t)

	now := time.Now()
	mocks.storage.EXPECT().ExpireOverdueTasks(gomock.Any(), now).
		Return([]domain.Task{{ID: domain.TaskID(uuid.New())}, {ID: domain.TaskID(uuid.New())}}, nil)

	expired, err := svc.ExpireOverdue(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 2, expired)
}

func TestTasks_RemindDueSoon(t *testing.T) {
	_, mocks, svc := newTestTasks(t)

	now := time.Now()
	groupID := domain.GroupID(uuid.New())
	assigneeID := domain.UserID(uuid.New())

	mocks.storage.EXPECT().TasksDueWithin(gomock.Any(), now, time.Hour).Return([]domain.Task{
		{ID: domain.TaskID(uuid.New()), GroupID: groupID, Title: "Assigned",
			AssigneeID: &assigneeID, DueAt: now.Add(30 * time.Minute)},
		// unassigned tasks get no reminder
		{ID: domain.TaskID(uuid.New()), GroupID: groupID, Title: "Unassigned",
			DueAt: now.Add(45 * time.Minute)},
	}, nil)
	mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, notifications ...domain.Notification) error {
			require.Len(t, notifications, 1)
			require.Equal(t, assigneeID, notifications[0].UserID)
			require.Equal(t, domain.NotificationTaskReminder, notifications[0].Type)

			return nil
		},
	)

	reminded, err := svc.RemindDueSoon(context.Background(), now, time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, reminded)
}
