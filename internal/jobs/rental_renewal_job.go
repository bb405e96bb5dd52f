package jobs

import (
	"context"
	"log/slog"

	"purelife/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRenewalSchedule fires the reminder sweep every morning at 09:00.
const DefaultRenewalSchedule = "0 0 9 * * *"

// RentalRenewalJob periodically sweeps active rentals whose period is about to
// lapse and sends renewal reminders to their customers.
type RentalRenewalJob struct {
	handler    commands.NotifyRentalRenewalsCommandHandler
	schedule   string
	windowDays int
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRentalRenewalJob creates the renewal reminder job. The schedule is a
// six-field cron expression; windowDays is how far ahead of the period end the
// reminder goes out.
func NewRentalRenewalJob(
	handler commands.NotifyRentalRenewalsCommandHandler,
	schedule string,
	windowDays int,
	logger *slog.Logger,
) *RentalRenewalJob {
	if schedule == "" {
		schedule = DefaultRenewalSchedule
	}

	return &RentalRenewalJob{
		handler:    handler,
		schedule:   schedule,
		windowDays: windowDays,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "rental_renewal_job"),
	}
}

// Start schedules the renewal sweep.
func (j *RentalRenewalJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewNotifyRentalRenewalsCommand(j.windowDays)
		if err != nil {
			j.logger.ErrorContext(ctx, "Rental renewal job misconfigured", "error", err)
			return
		}

		notified, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Rental renewal job failed", "error", err)
			return
		}
		if notified > 0 {
			j.logger.InfoContext(ctx, "Rental renewal reminders sent", "count", notified)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rental renewal job started",
		"schedule", j.schedule, "windowDays", j.windowDays)
	return nil
}

// Stop stops the renewal sweep.
func (j *RentalRenewalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rental renewal job stopped")
}
