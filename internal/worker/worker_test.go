package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockgamification "github.com/mserjo/bossy/internal/gamification/mock"
	"github.com/mserjo/bossy/internal/notification"
	mocktask "github.com/mserjo/bossy/internal/task/mock"
	"github.com/mserjo/bossy/internal/worker"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/serrors"
	mockstorage "github.com/mserjo/bossy/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func makeDeliveryJob(id int64, notificationID domain.NotificationID) *river.Job[notification.DeliveryJobArgs] {
	return &river.Job[notification.DeliveryJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   notification.DeliveryJobArgs{NotificationID: uuid.UUID(notificationID)},
	}
}

func TestDeliveryWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewDeliveryWorker(st)

	notificationID := domain.NotificationID(uuid.New())
	st.EXPECT().NotificationByID(gomock.Any(), notificationID).Return(&domain.Notification{
		ID:    notificationID,
		Type:  domain.NotificationTaskAssigned,
		Title: "You were assigned: Wash dishes",
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeDeliveryJob(1, notificationID)))
}

func TestDeliveryWorker_Work_MissingNotificationCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewDeliveryWorker(st)

	notificationID := domain.NotificationID(uuid.New())
	st.EXPECT().NotificationByID(gomock.Any(), notificationID).Return(nil, nil)

	err := w.Work(context.Background(), makeDeliveryJob(2, notificationID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDeliveryWorker_Work_StorageErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewDeliveryWorker(st)

	notificationID := domain.NotificationID(uuid.New())
	st.EXPECT().NotificationByID(gomock.Any(), notificationID).
		Return(nil, serrors.With(serrors.ErrInternal, "connection reset"))

	err := w.Work(context.Background(), makeDeliveryJob(3, notificationID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func makeSchedulerJob(id int64) *river.Job[worker.SchedulerJobArgs] {
	return &river.Job[worker.SchedulerJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   worker.SchedulerJobArgs{},
	}
}

func TestSchedulerWorker_Work_RunsAllPhases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tasks := mocktask.NewMockTasks(ctrl)
	w := worker.NewSchedulerWorker(tasks, time.Hour)

	tasks.EXPECT().SpawnDueInstances(gomock.Any(), gomock.Any(), uint(200)).Return(3, nil)
	tasks.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(1, nil)
	tasks.EXPECT().RemindDueSoon(gomock.Any(), gomock.Any(), time.Hour).Return(2, nil)

	require.NoError(t, w.Work(context.Background(), makeSchedulerJob(1)))
}

func TestSchedulerWorker_Work_FailingPhaseDoesNotBlockOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tasks := mocktask.NewMockTasks(ctrl)
	w := worker.NewSchedulerWorker(tasks, time.Hour)

	spawnErr := serrors.With(serrors.ErrInternal, "spawn failed")
	tasks.EXPECT().SpawnDueInstances(gomock.Any(), gomock.Any(), uint(200)).Return(0, spawnErr)
	tasks.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(4, nil)
	tasks.EXPECT().RemindDueSoon(gomock.Any(), gomock.Any(), time.Hour).Return(0, nil)

	err := w.Work(context.Background(), makeSchedulerJob(2))
	require.ErrorIs(t, err, spawnErr)
}

func makeSnapshotJob(id int64) *river.Job[worker.SnapshotJobArgs] {
	return &river.Job[worker.SnapshotJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   worker.SnapshotJobArgs{},
	}
}

func TestSnapshotWorker_Work_SnapshotsEveryRatedGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	g := mockgamification.NewMockGamification(ctrl)
	w := worker.NewSnapshotWorker(st, g)

	first := domain.GroupID(uuid.New())
	second := domain.GroupID(uuid.New())

	st.EXPECT().RatedGroupIDs(gomock.Any()).Return([]domain.GroupID{first, second}, nil)
	g.EXPECT().SnapshotGroup(gomock.Any(), first).Return(nil)
	g.EXPECT().SnapshotGroup(gomock.Any(), second).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeSnapshotJob(1)))
}

func TestSnapshotWorker_Work_BrokenGroupIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	g := mockgamification.NewMockGamification(ctrl)
	w := worker.NewSnapshotWorker(st, g)

	broken := domain.GroupID(uuid.New())
	healthy := domain.GroupID(uuid.New())
	snapErr := serrors.With(serrors.ErrInternal, "snapshot failed")

	st.EXPECT().RatedGroupIDs(gomock.Any()).Return([]domain.GroupID{broken, healthy}, nil)
	g.EXPECT().SnapshotGroup(gomock.Any(), broken).Return(snapErr)
	g.EXPECT().SnapshotGroup(gomock.Any(), healthy).Return(nil)

	err := w.Work(context.Background(), makeSnapshotJob(2))
	require.ErrorIs(t, err, snapErr)
}
