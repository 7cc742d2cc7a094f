// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. PendingOrderReminderJob - Runs every minute to remind stores about
// store orders that have sat in pending longer than the configured window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(notifyPendingHandler, reminderAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Each sweep only notifies stores whose pending orders are
// older than the reminder window, and a store already reminded within the
// window is skipped via the reminder tracker.
//
// # Error Handling
//
// - A failed sweep is logged and retried on the next tick
// - Per-store notification failures never abort the rest of the sweep
// - Failed job starts will stop any already running jobs
package jobs
