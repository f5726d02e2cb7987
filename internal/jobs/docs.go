// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the timed delivery progression.
//
// # Available Jobs
//
// 1. DeliveryProgressionJob - Runs every second to advance scheduled deliveries
// through pickup (10s after assignment) and completion (20s after assignment)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required handler
//	jobManager := jobs.NewJobManager(advanceDeliveriesHandler, logger)
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
// The progression job uses the cron expression "* * * * * *" which means it
// runs every second. Pickup and completion fire on the first tick at or past
// their offsets, so a missed tick delays a transition, never skips it.
//
// # Error Handling
//
// Per-delivery failures are handled inside the command handler (logged, the
// pass continues); the job only logs failures of the pass itself.
//
// # Persistence
//
// The schedule of pending progressions lives in memory. A process restart
// loses it: already created deliveries stay in the database at whatever
// status they reached, and no job resumes them.
package jobs
