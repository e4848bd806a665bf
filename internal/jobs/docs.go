// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for stock reservation hygiene.
//
// # Available Jobs
//
// 1. ReservationExpiryJob - Runs every minute to release reservations whose
// TTL elapsed without confirmation, returning the held stock to the catalog
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseExpiredHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Reservations carry minute-granularity TTLs, so
// a tighter schedule would only add load without changing behavior.
//
// # Error Handling
//
// - The expiry sweep runs in one transaction; a failed sweep is logged and
// retried unchanged on the next tick
// - Failed job starts will stop any already running jobs
package jobs
