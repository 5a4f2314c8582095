package worker

import (
	"context"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"github.com/mserjo/bossy/internal/task"
	"github.com/mserjo/bossy/pkg/logger"
)

// schedulerSpawnLimit caps how many templates one scheduler run spawns from.
const schedulerSpawnLimit = 200

// SchedulerJobArgs is the payload of the periodic task scheduler job.
type SchedulerJobArgs struct{}

// Kind returns the River job kind of the scheduler job.
func (SchedulerJobArgs) Kind() string { return "TaskSchedulerJob" }

// InsertOpts deduplicates scheduler runs so overlapping ticks collapse into
// one pending job.
func (SchedulerJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{rivertype.JobStateAvailable, rivertype.JobStateScheduled},
		},
	}
}

// SchedulerWorker runs the recurring-task machinery: it spawns instances from
// due templates, expires overdue tasks and sends due-soon reminders.
type SchedulerWorker struct {
	river.WorkerDefaults[SchedulerJobArgs]

	tasks          task.Tasks
	reminderWindow time.Duration
}

// NewSchedulerWorker constructs a SchedulerWorker using the provided task
// service.
func NewSchedulerWorker(tasks task.Tasks, reminderWindow time.Duration) *SchedulerWorker {
	return &SchedulerWorker{
		tasks:          tasks,
		reminderWindow: reminderWindow,
	}
}

// Work executes one scheduler pass. The three phases are independent; a
// failure in one does not block the others, the first error is reported for
// retry.
func (s *SchedulerWorker) Work(ctx context.Context, job *river.Job[SchedulerJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	now := time.Now()

	var firstErr error

	spawned, err := s.tasks.SpawnDueInstances(ctx, now, schedulerSpawnLimit)
	if err != nil {
		logger.Error(ctx, "error spawning recurring task instances", zap.Error(err))
		firstErr = err
	}

	expired, err := s.tasks.ExpireOverdue(ctx, now)
	if err != nil {
		logger.Error(ctx, "error expiring overdue tasks", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}

	reminded, err := s.tasks.RemindDueSoon(ctx, now, s.reminderWindow)
	if err != nil {
		logger.Error(ctx, "error sending due-soon reminders", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}

	logger.Info(ctx, "scheduler pass finished",
		zap.Int("spawned", spawned),
		zap.Int("expired", expired),
		zap.Int("reminded", reminded))

	return firstErr
}
