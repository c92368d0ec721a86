package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background batches. Backends that share a database with
// the queue insert the job atomically with the surrounding transaction.
type JobStorage interface {
	// AddJob enqueues args. It reports false without an error when the queue
	// skipped the insert because a unique job with the same key already exists,
	// e.g. a batch ID that is still queued or was completed recently.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
