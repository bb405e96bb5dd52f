package commands

import (
	"context"
	"log/slog"

	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/services"
	"purelife/internal/core/ports"
)

// VerifyPaymentCommandHandler settles a gateway checkout callback.
//
// On a matching signature the payment and its order are updated in one
// transaction: the payment becomes COMPLETED with the gateway payment id, the
// order's payment state becomes COMPLETED and its status PAYMENT_COMPLETED.
// The customer is notified, and so is every service agent eligible for the
// customer's area, each send isolated so one broken device never blocks the
// rest.
//
// On a mismatch only the payment row is marked FAILED; the order is not
// touched and stays at PAYMENT_PENDING so the customer can retry. A mismatch
// is a normal outcome, reported as verified=false, not as an error.
type VerifyPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	userRepo   ports.UserRepository
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewVerifyPaymentCommandHandler creates a handler for callback verification.
func NewVerifyPaymentCommandHandler(uowFactory OrderPaymentUoWFactory, userRepo ports.UserRepository,
	gateway ports.PaymentGateway, notifier ports.Notifier, logger *slog.Logger) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		userRepo:   userRepo,
		gateway:    gateway,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the callback and reports whether the signature matched.
func (h VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	policy := services.NewAccessPolicy()
	if err = policy.AuthorizePayment(cmd.Actor(), ord); err != nil {
		return false, err
	}

	pmt, err := paymentRepo.GetByOrderAndGatewayOrder(ctx, ord.ID(), cmd.GatewayOrderID())
	if err != nil {
		return false, err
	}

	if !h.gateway.VerifySignature(cmd.GatewayOrderID(), cmd.GatewayPaymentID(), cmd.Signature()) {
		pmt.Fail()

		if err = paymentRepo.Update(ctx, pmt); err != nil {
			return false, err
		}
		if err = uow.Commit(ctx); err != nil {
			return false, err
		}

		notify(ctx, h.notifier, h.logger, paymentFailedNotification(ord))

		return false, nil
	}

	if err = pmt.Complete(cmd.GatewayPaymentID()); err != nil {
		return false, err
	}

	if err = ord.CompletePayment(); err != nil {
		return false, err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	notify(ctx, h.notifier, h.logger, paymentCompletedNotification(ord))
	h.notifyEligibleAgents(ctx, ord)

	return true, nil
}

// notifyEligibleAgents tells every agent who could take the installation that
// a paid order is waiting. Best effort per agent: a failed lookup or send is
// logged and the loop continues.
func (h VerifyPaymentCommandHandler) notifyEligibleAgents(ctx context.Context, ord *order.Order) {
	customer, err := h.userRepo.Get(ctx, ord.CustomerID())
	if err != nil {
		h.logger.Warn("could not resolve customer for agent notifications",
			"orderId", ord.ID().String(), "error", err)
		return
	}
	if customer.FranchiseAreaID() == nil {
		return
	}

	agents, err := h.userRepo.GetAgentsForArea(ctx, *customer.FranchiseAreaID())
	if err != nil {
		h.logger.Warn("could not list agents for area",
			"orderId", ord.ID().String(), "error", err)
		return
	}

	for _, agent := range agents {
		notify(ctx, h.notifier, h.logger, newPaidOrderAgentNotification(ord, agent.ID()))
	}
}
