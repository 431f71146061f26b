// Package jobs provides scheduled background tasks for the water delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. DenylistEvictionJob - Prunes expired entries from the token denylist
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(evictHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Job schedules use six-field cron expressions with a seconds column. The
// denylist eviction schedule comes from configuration and defaults to the
// top of every hour.
package jobs
