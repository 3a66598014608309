package jobs

import (
	"context"
	"log/slog"

	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatusCountsJob periodically refreshes the realtime per-status counters
// from the store of record. The counters drift between refreshes because the
// increment path is best-effort; this job is the source of truth.
type StatusCountsJob struct {
	handler queries.GetStatusStatisticsQueryHandler
	stats   ports.StatsSink
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusCountsJob creates a job that refreshes the status counters every
// five minutes.
func NewStatusCountsJob(
	handler queries.GetStatusStatisticsQueryHandler,
	stats ports.StatsSink,
	logger *slog.Logger,
) *StatusCountsJob {
	return &StatusCountsJob{
		handler: handler,
		stats:   stats,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_counts_job"),
	}
}

// Start begins the status counts job to run every five minutes.
func (j *StatusCountsJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetStatusStatisticsQuery()

		statistics, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status counts job failed to read statistics", "error", err)
			return
		}

		if err = j.stats.RefreshStatusCounts(ctx, statistics.Counts); err != nil {
			j.logger.WarnContext(ctx, "Status counts job failed to refresh counters", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status counts job started (running every five minutes)")
	return nil
}

// Stop stops the status counts job.
func (j *StatusCountsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status counts job stopped")
}
