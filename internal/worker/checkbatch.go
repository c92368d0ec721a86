package worker

import (
	"context"
	"domainchecker/internal/checker"
	"domainchecker/pkg/logger"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CheckBatchWorker is a River worker that runs asynchronously submitted batches
// through a checker.Checker. Batches are idempotent, so a retried job simply
// refreshes the results written by the previous attempt.
//
// Error handling: a batch rejected by validation (bad shape, foreign domains)
// fails the same way on every attempt and cancels the job. Any other error,
// including an interrupted batch, is returned so River retries the job up to
// its max attempts.
type CheckBatchWorker struct {
	river.WorkerDefaults[checker.JobArgs]

	checker checker.Checker
	// timeout bounds a single batch. Zero keeps River's default, a negative
	// value disables the timeout.
	timeout time.Duration
}

// NewCheckBatchWorker constructs a CheckBatchWorker using the provided checker.
func NewCheckBatchWorker(checker checker.Checker, timeout time.Duration) *CheckBatchWorker {
	return &CheckBatchWorker{
		checker: checker,
		timeout: timeout,
	}
}

// Timeout implements river.Worker.
func (w *CheckBatchWorker) Timeout(*river.Job[checker.JobArgs]) time.Duration {
	return w.timeout
}

// Work runs the batch carried by the job.
func (w *CheckBatchWorker) Work(ctx context.Context, job *river.Job[checker.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("batchID", string(job.Args.BatchID)))

	summary, err := w.checker.Run(ctx, job.Args.Request)
	if err != nil {
		if checker.IsValidationError(err) {
			logger.Warn(ctx, "batch rejected", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in checking batch", zap.Error(err))

		return fmt.Errorf("could not check batch: %w", err)
	}

	logger.Info(ctx, "batch checked successfully",
		zap.Int("total", summary.Total),
		zap.Int("errorCount", summary.ErrorCount))

	return nil
}
