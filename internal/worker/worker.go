// Package worker runs background batches on top of the River job queue.
package worker

import (
	"context"
	"domainchecker/internal/checker"
	"domainchecker/internal/config"
	"domainchecker/pkg/logger"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultQueueWorkers = 4

// Options configure the River client started by Start.
type Options struct {
	// QueueWorkers is the number of batches processed concurrently.
	QueueWorkers int
	// JobTimeout bounds a single batch. A negative value disables the timeout.
	JobTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		QueueWorkers: cfg.Checker.QueueWorkers,
		JobTimeout:   cfg.Checker.JobTimeout,
	}
}

// Start registers the batch worker and starts a River client processing the
// default queue. Stop the returned client to drain in-flight batches.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	checker checker.Checker,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.QueueWorkers <= 0 {
		options.QueueWorkers = defaultQueueWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewCheckBatchWorker(checker, options.JobTimeout))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.QueueWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
