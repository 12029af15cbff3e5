// Package jobs provides scheduled background tasks for the rider gateway.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep open views fresh and to release the ones nobody uses.
//
// # Available Jobs
//
// 1. WorklistRefreshJob - Reloads the selected tab of every open view on a configurable schedule
// 2. ViewReaperJob - Runs every minute and tears down views idle for longer than the TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(registry, jobs.Config{
//		RefreshSpec:    "*/15 * * * * *",
//		RefreshTimeout: 10 * time.Second,
//		ViewIdleTTL:    30 * time.Minute,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A refresh overtaken by a tab switch is dropped silently
// - Views that never selected a tab are skipped
// - Other refresh failures are logged; the view keeps its last snapshot
// - Failed job starts will stop any already running jobs
package jobs
