package commands

import (
	"context"
	"log/slog"
	"time"

	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/rental"
	"purelife/internal/core/domain/services"
	"purelife/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
//
// Beyond the plain transition it owns one derived effect: the first time a
// RENTAL order reaches INSTALLED, a rental record is created in the same
// transaction as the order update. The rental starts immediately with the
// three-month initial period, the product's monthly rent and the deposit the
// order already collected. A repeated INSTALLED write never creates a second
// rental.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	userRepo    ports.UserRepository
	productRepo ports.ProductRepository
	notifier    ports.Notifier
	logger      *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, userRepo ports.UserRepository,
	productRepo ports.ProductRepository, notifier ports.Notifier, logger *slog.Logger) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		userRepo:    userRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Handle processes the status change command.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	if err = policy.AuthorizeStatusChange(cmd.Actor(), ord, customer, cmd.Target()); err != nil {
		return err
	}

	if err = ord.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	rentalActivated := false
	if ord.IsRental() && ord.Status() == order.StatusInstalled {
		if rentalActivated, err = h.deriveRental(ctx, uow, ord); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, h.logger, orderStatusChangedNotification(ord))
	if rentalActivated {
		notify(ctx, h.notifier, h.logger, rentalActivatedNotification(ord))
	}

	return nil
}

// deriveRental creates the rental record for an installed rental order inside
// the already-open transaction. Idempotent: a rental that already exists for
// the order is left alone. Reports whether a rental was actually created so
// the caller only announces an activation once.
func (h ChangeOrderStatusCommandHandler) deriveRental(ctx context.Context, uow UoW, ord *order.Order) (bool, error) {
	rentalRepo := uow.RentalRepository()

	exists, err := rentalRepo.ExistsForOrder(ctx, ord.ID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	prod, err := h.productRepo.Get(ctx, ord.ProductID())
	if err != nil {
		return false, err
	}

	monthlyAmount, err := prod.RentPrice()
	if err != nil {
		return false, err
	}

	newRental, err := rental.NewRental(ord.ID(), ord.CustomerID(), ord.ProductID(),
		monthlyAmount, ord.TotalAmount(), time.Now().UTC())
	if err != nil {
		return false, err
	}

	if err = rentalRepo.Add(ctx, newRental); err != nil {
		return false, err
	}
	return true, nil
}
