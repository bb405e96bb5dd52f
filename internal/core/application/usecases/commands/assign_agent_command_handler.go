package commands

import (
	"context"
	"log/slog"

	"purelife/internal/core/domain/services"
	"purelife/internal/core/ports"
	"purelife/internal/pkg/errs"
)

// AssignAgentCommandHandler assigns a service agent to a paid order.
//
// The candidate must be an active service agent serving the customer's
// franchise area (or a global agent). The order must have completed payment.
// On success both the customer and the agent are notified, best effort.
type AssignAgentCommandHandler struct {
	uowFactory OrderUoWFactory
	userRepo   ports.UserRepository
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory OrderUoWFactory, userRepo ports.UserRepository,
	notifier ports.Notifier, logger *slog.Logger) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the assignment command.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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
	if err = policy.AuthorizeAssignAgent(cmd.Actor(), ord, customer); err != nil {
		return err
	}

	if customer.FranchiseAreaID() == nil {
		return errs.NewInvalidStateError("customer does not belong to a franchise area")
	}

	agent, err := h.userRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	matcher := services.NewAgentMatcher()
	if err = matcher.EnsureEligible(agent, *customer.FranchiseAreaID()); err != nil {
		return err
	}

	if err = ord.AssignAgent(agent.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, h.logger, agentAssignedCustomerNotification(ord, agent.Name()))
	notify(ctx, h.notifier, h.logger, agentAssignedAgentNotification(ord, agent.ID()))

	return nil
}
