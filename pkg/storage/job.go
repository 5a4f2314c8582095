package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations are responsible for persisting the job into the underlying
// queue backend. The args parameter contains the job payload and opts can be
// used to customize insertion behavior (e.g., queue name, delay, priority).
//
// When called on a TxStorage, insertion must be atomic with the surrounding
// transaction so that a rolled-back operation never leaves a queued job
// behind (notification delivery relies on this).
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The returned bool
	// reports whether a new job row was actually inserted (false when skipped
	// by a uniqueness constraint).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
