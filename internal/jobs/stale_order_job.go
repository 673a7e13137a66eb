// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. The only job today is the stale-order sweep,
// which cancels pending orders nobody confirmed within the configured age.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically cancels pending orders older than maxAge.
type StaleOrderJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderJob creates the stale-order sweep. The schedule is a standard
// five-field cron expression.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_job"),
	}
}

// Start schedules the sweep.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale order job started", "schedule", j.schedule, "max_age", j.maxAge)
	return nil
}

// Stop stops the sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Stale order job stopped")
}

func (j *StaleOrderJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewCancelStaleOrdersCommand(j.maxAge)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order job misconfigured", "error", err)
		return
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		return
	}
	if cancelled > 0 {
		j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
	}
}
