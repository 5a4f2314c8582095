package worker

import (
	"context"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"github.com/mserjo/bossy/internal/gamification"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/storage"
)

// SnapshotJobArgs is the payload of the periodic leaderboard snapshot job.
type SnapshotJobArgs struct{}

// Kind returns the River job kind of the snapshot job.
func (SnapshotJobArgs) Kind() string { return "RatingSnapshotJob" }

// InsertOpts deduplicates snapshot runs.
func (SnapshotJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{rivertype.JobStateAvailable, rivertype.JobStateScheduled},
		},
	}
}

// SnapshotWorker persists leaderboard standings for every group with at least
// one bonus account.
type SnapshotWorker struct {
	river.WorkerDefaults[SnapshotJobArgs]

	storage      storage.Storage
	gamification gamification.Gamification
}

// NewSnapshotWorker constructs a SnapshotWorker using the provided storage
// and gamification service.
func NewSnapshotWorker(storage storage.Storage, gamification gamification.Gamification) *SnapshotWorker {
	return &SnapshotWorker{
		storage:      storage,
		gamification: gamification,
	}
}

// Work snapshots every rated group. A failing group is logged and skipped so
// one broken group does not starve the rest; the first error is reported for
// retry.
func (s *SnapshotWorker) Work(ctx context.Context, job *river.Job[SnapshotJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	groupIDs, err := s.storage.RatedGroupIDs(ctx)
	if err != nil {
		logger.Error(ctx, "error listing rated groups", zap.Error(err))

		return err
	}

	var firstErr error
	snapshotted := 0
	for _, groupID := range groupIDs {
		if err := s.gamification.SnapshotGroup(ctx, groupID); err != nil {
			logger.Error(ctx, "error snapshotting group",
				zap.String("groupID", uuid.UUID(groupID).String()),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		snapshotted++
	}

	logger.Info(ctx, "rating snapshot pass finished",
		zap.Int("groups", len(groupIDs)),
		zap.Int("snapshotted", snapshotted))

	return firstErr
}
