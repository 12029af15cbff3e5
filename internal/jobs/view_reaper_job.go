package jobs

import (
	"context"
	"log/slog"
	"time"

	"rider/internal/core/application/workflow"

	"github.com/robfig/cron/v3"
)

const viewReaperSpec = "0 * * * * *"

// ViewReaperJob tears down views that have not been used for longer than
// the idle TTL. Runs once a minute.
type ViewReaperJob struct {
	views  *workflow.Registry
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

func NewViewReaperJob(views *workflow.Registry, ttl time.Duration, logger *slog.Logger) *ViewReaperJob {
	return &ViewReaperJob{
		views:  views,
		ttl:    ttl,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "view_reaper_job"),
	}
}

// Start schedules the job.
func (j *ViewReaperJob) Start() error {
	if _, err := j.cron.AddFunc(viewReaperSpec, func() { j.Run() }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "View reaper job started", "ttl", j.ttl)
	return nil
}

// Run reaps idle views once and returns how many were closed.
func (j *ViewReaperJob) Run() int {
	n := j.views.Reap(j.ttl)
	if n > 0 {
		j.logger.InfoContext(context.Background(), "Idle views closed", "count", n, "open", j.views.Len())
	}
	return n
}

// Stop stops the view reaper job.
func (j *ViewReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "View reaper job stopped")
}
