package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"rider/internal/core/application/workflow"

	"github.com/robfig/cron/v3"
)

// WorklistRefreshJob periodically reloads the selected tab of every open view.
// Each reload goes through the view's intent token, so a tab switch made by
// the rider while a refresh is in flight wins.
type WorklistRefreshJob struct {
	views   *workflow.Registry
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorklistRefreshJob creates the job. spec is a six-field cron expression
// (with seconds); timeout bounds one view's reload.
func NewWorklistRefreshJob(views *workflow.Registry, spec string, timeout time.Duration, logger *slog.Logger) *WorklistRefreshJob {
	return &WorklistRefreshJob{
		views:   views,
		spec:    spec,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "worklist_refresh_job"),
	}
}

// Start schedules the job.
func (j *WorklistRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Worklist refresh job started", "spec", j.spec)
	return nil
}

// Run refreshes every open view once, concurrently, and returns how many
// reloads were applied.
func (j *WorklistRefreshJob) Run(ctx context.Context) int {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for _, view := range j.views.Views() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if j.refresh(ctx, view) {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return applied
}

func (j *WorklistRefreshJob) refresh(ctx context.Context, view *workflow.View) bool {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	_, err := view.Worklist().Refresh(view.Bind(ctx))
	switch {
	case err == nil:
		return true
	case errors.Is(err, workflow.ErrNoTab), errors.Is(err, workflow.ErrSuperseded), errors.Is(err, workflow.ErrLoadInFlight):
		return false
	default:
		j.logger.WarnContext(ctx, "Worklist refresh failed", "view_id", view.ID().String(), "error", err)
		return false
	}
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *WorklistRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Worklist refresh job stopped")
}
