// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3.
//
// RentalRenewalJob sweeps active rentals approaching their period end and
// sends renewal reminders. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(notifyRenewalsHandler, schedule, windowDays, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Reminder sends are best effort: a failed sweep is logged and retried on the
// next tick, never escalated.
package jobs
