package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autosaveJob *AutosaveJob
	logger      *slog.Logger
}

// NewJobManager creates a job manager. A nil autosave job disables autosave.
func NewJobManager(autosaveJob *AutosaveJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		autosaveJob: autosaveJob,
		logger:      logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.autosaveJob == nil {
		jm.logger.InfoContext(context.Background(), "Autosave disabled")
		return nil
	}
	if err := jm.autosaveJob.Start(); err != nil {
		return fmt.Errorf("failed to start autosave job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully. The store is saved one last
// time so that no change since the previous run is lost.
func (jm *JobManager) StopAll() {
	if jm.autosaveJob == nil {
		return
	}
	jm.autosaveJob.Stop()

	ctx := context.Background()
	if _, err := jm.autosaveJob.Save(ctx); err != nil {
		jm.logger.ErrorContext(ctx, "Final autosave failed", "error", err)
	}
}
