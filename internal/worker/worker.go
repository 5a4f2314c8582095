package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/internal/gamification"
	"github.com/mserjo/bossy/internal/task"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/storage"
)

// Options configure the background worker pool and its periodic jobs.
type Options struct {
	// MaxWorkers limits the number of jobs running concurrently.
	MaxWorkers int
	// SchedulerInterval is how often the task scheduler job runs.
	SchedulerInterval time.Duration
	// ReminderWindow is how far ahead of a due date reminders fire.
	ReminderWindow time.Duration
	// SnapshotInterval is how often leaderboard snapshots are taken.
	SnapshotInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:        cfg.Worker.MaxWorkers,
		SchedulerInterval: cfg.Worker.SchedulerInterval,
		ReminderWindow:    cfg.Worker.ReminderWindow,
		SnapshotInterval:  cfg.Worker.SnapshotInterval,
	}
}

// Start registers all workers and periodic jobs and starts the River client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	store storage.Storage,
	tasks task.Tasks,
	gamification gamification.Gamification,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDeliveryWorker(store))
	river.AddWorker(workers, NewSchedulerWorker(tasks, options.ReminderWindow))
	river.AddWorker(workers, NewSnapshotWorker(store, gamification))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.SchedulerInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return SchedulerJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
			river.NewPeriodicJob(
				river.PeriodicInterval(options.SnapshotInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return SnapshotJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: false},
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
