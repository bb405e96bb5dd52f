package jobs

import (
	"fmt"
	"log/slog"

	"purelife/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	rentalRenewalJob *RentalRenewalJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	notifyRenewalsHandler commands.NotifyRentalRenewalsCommandHandler,
	renewalSchedule string,
	renewalWindowDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		rentalRenewalJob: NewRentalRenewalJob(notifyRenewalsHandler, renewalSchedule, renewalWindowDays, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.rentalRenewalJob.Start(); err != nil {
		return fmt.Errorf("failed to start rental renewal job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rentalRenewalJob.Stop()
}
