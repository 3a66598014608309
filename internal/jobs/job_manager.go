package jobs

import (
	"fmt"
	"log/slog"

	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusCountsJob *StatusCountsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statusStatisticsHandler queries.GetStatusStatisticsQueryHandler,
	stats ports.StatsSink,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusCountsJob: NewStatusCountsJob(statusStatisticsHandler, stats, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusCountsJob.Start(); err != nil {
		return fmt.Errorf("failed to start status counts job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusCountsJob.Stop()
}
