package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a river job on whichever handle PgSQL currently wraps.
// Inside WithTx the insert joins the surrounding transaction, so jobs
// enqueued by a rolled-back operation (say, a notification of a failed task
// review) are never delivered. Outside a transaction the job is inserted
// directly on the pool and becomes visible as soon as the insert commits.
//
// The returned bool is false when river skipped the insert because an
// equivalent unique job already exists, which is how the periodic scheduler
// and snapshot jobs are deduplicated.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if ok {
		riverClient, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not build river client: %w", err)
		}

		job, err := riverClient.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not enqueue job in tx: %w", err)
		}

		return !job.UniqueSkippedAsDuplicate, nil
	}

	riverClient, err := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
	if err != nil {
		return false, fmt.Errorf("could not build river client: %w", err)
	}

	job, err := riverClient.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not enqueue job: %w", err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
