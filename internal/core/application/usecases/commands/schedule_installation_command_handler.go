package commands

import (
	"context"
	"log/slog"
	"time"

	"purelife/internal/core/domain/services"
	"purelife/internal/core/ports"
)

// ScheduleInstallationCommandHandler sets an order's installation date and
// moves it to INSTALLATION_PENDING. Rescheduling an already scheduled order is
// allowed; the date just has to stay in the future.
type ScheduleInstallationCommandHandler struct {
	uowFactory OrderUoWFactory
	userRepo   ports.UserRepository
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewScheduleInstallationCommandHandler creates a handler for installation scheduling.
func NewScheduleInstallationCommandHandler(uowFactory OrderUoWFactory, userRepo ports.UserRepository,
	notifier ports.Notifier, logger *slog.Logger) ScheduleInstallationCommandHandler {
	return ScheduleInstallationCommandHandler{
		uowFactory: uowFactory,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the scheduling command.
func (h ScheduleInstallationCommandHandler) Handle(ctx context.Context, cmd ScheduleInstallationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	customer, err := h.userRepo.Get(ctx, ord.CustomerID())
	if err != nil {
		return err
	}

	policy := services.NewAccessPolicy()
	if err = policy.AuthorizeScheduleInstallation(cmd.Actor(), ord, customer); err != nil {
		return err
	}

	if err = ord.ScheduleInstallation(cmd.InstallationDate(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, h.logger, installationScheduledNotification(ord))

	return nil
}
