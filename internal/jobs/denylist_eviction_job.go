package jobs

import (
	"context"
	"log/slog"

	"watertanker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DenylistEvictionJob removes expired entries from the token denylist on a
// schedule. Logout and refresh rotation insert a row per revoked token, so
// the table grows until expired rows are swept out.
type DenylistEvictionJob struct {
	handler  commands.EvictExpiredTokensCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDenylistEvictionJob creates a job that prunes the denylist on the given
// six-field cron schedule.
func NewDenylistEvictionJob(
	handler commands.EvictExpiredTokensCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DenylistEvictionJob {
	return &DenylistEvictionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "denylist_eviction_job"),
	}
}

// Start begins the eviction job on its configured schedule.
func (j *DenylistEvictionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewEvictExpiredTokensCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Denylist eviction job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Evicted expired denylist entries", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Denylist eviction job started", "schedule", j.schedule)
	return nil
}

// Stop stops the eviction job.
func (j *DenylistEvictionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Denylist eviction job stopped")
}
