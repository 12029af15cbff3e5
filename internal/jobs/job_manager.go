package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"rider/internal/core/application/workflow"
)

// Config holds the schedules of the background jobs.
type Config struct {
	// RefreshSpec is the six-field cron expression of the worklist refresh.
	RefreshSpec string
	// RefreshTimeout bounds the reload of one view.
	RefreshTimeout time.Duration
	// ViewIdleTTL is how long an unused view stays open.
	ViewIdleTTL time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	worklistRefreshJob *WorklistRefreshJob
	viewReaperJob      *ViewReaperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(views *workflow.Registry, cfg Config, logger *slog.Logger) *JobManager {
	return &JobManager{
		worklistRefreshJob: NewWorklistRefreshJob(views, cfg.RefreshSpec, cfg.RefreshTimeout, logger),
		viewReaperJob:      NewViewReaperJob(views, cfg.ViewIdleTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.viewReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start view reaper job: %w", err)
	}

	if err := jm.worklistRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.viewReaperJob.Stop()
		return fmt.Errorf("failed to start worklist refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.worklistRefreshJob.Stop()
	jm.viewReaperJob.Stop()
}
