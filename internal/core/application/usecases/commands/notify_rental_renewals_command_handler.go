package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"purelife/internal/core/domain/model/rental"
	"purelife/internal/core/ports"
)

// NotifyRentalRenewalsCommandHandler reminds customers whose rental period is
// about to end. Runs from the scheduler; every reminder is best effort and a
// failed send never stops the sweep.
type NotifyRentalRenewalsCommandHandler struct {
	uowFactory RentalUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewNotifyRentalRenewalsCommandHandler creates a handler for renewal reminders.
func NewNotifyRentalRenewalsCommandHandler(uowFactory RentalUoWFactory,
	notifier ports.Notifier, logger *slog.Logger) NotifyRentalRenewalsCommandHandler {
	return NotifyRentalRenewalsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle sweeps active rentals expiring inside the window and sends one
// reminder per rental. Returns how many reminders were attempted.
func (h NotifyRentalRenewalsCommandHandler) Handle(ctx context.Context, cmd NotifyRentalRenewalsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deadline := time.Now().UTC().AddDate(0, 0, cmd.WindowDays())
	rentals, err := uow.RentalRepository().GetActiveExpiringBy(ctx, deadline)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, r := range rentals {
		notify(ctx, h.notifier, h.logger, rentalRenewalNotification(r))
	}

	return len(rentals), nil
}

func rentalRenewalNotification(r *rental.Rental) ports.Notification {
	return ports.Notification{
		RecipientID: r.CustomerID(),
		Channels:    []ports.NotificationChannel{ports.ChannelPush, ports.ChannelEmail},
		Title:       "Rental renewal due",
		Body: fmt.Sprintf("Your rental period ends on %s. Renew to keep your purifier running.",
			r.CurrentPeriodEnd().Format("02 Jan 2006")),
		Data: map[string]string{"rentalId": r.ID().String(), "orderId": r.OrderID().String()},
	}
}
