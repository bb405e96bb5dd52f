package commands

import (
	"context"
	"log/slog"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/payment"
	"purelife/internal/core/domain/model/product"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/core/ports"
	"purelife/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves the product's price (buy price for purchases, refundable deposit
// for rentals) and creates the order together with its pending payment row in
// one transaction, so a crash can never leave an order without a payment.
// The customer gets a best-effort confirmation after commit.
type CreateOrderCommandHandler struct {
	uowFactory  OrderPaymentUoWFactory
	userRepo    ports.UserRepository
	productRepo ports.ProductRepository
	notifier    ports.Notifier
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderPaymentUoWFactory, userRepo ports.UserRepository,
	productRepo ports.ProductRepository, notifier ports.Notifier, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		userRepo:    userRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Handle processes the order placement command and returns the new order's id.
//
// Preconditions enforced here:
//   - the actor is a customer placing their own order
//   - the customer belongs to a franchise area (agents are matched by area later)
//   - the product offers the requested order type
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if cmd.Actor().Role != user.RoleCustomer {
		return kernel.UUID{}, errs.NewOperationForbiddenError("only customers can place orders")
	}

	customer, err := h.userRepo.Get(ctx, cmd.Actor().ID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if customer.FranchiseAreaID() == nil {
		return kernel.UUID{}, errs.NewInvalidStateError(
			"customer does not belong to a franchise area")
	}

	prod, err := h.productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return kernel.UUID{}, err
	}

	totalAmount, paymentType, err := resolveOrderPricing(prod, cmd.OrderType())
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(customer.ID(), prod.ID(), cmd.OrderType(), totalAmount)
	if err != nil {
		return kernel.UUID{}, err
	}

	newPayment, err := payment.NewPayment(newOrder.ID(), totalAmount, paymentType)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	notify(ctx, h.notifier, h.logger, orderCreatedNotification(newOrder))

	return newOrder.ID(), nil
}

// resolveOrderPricing maps the requested order type to the amount payable up
// front and the kind of payment it is.
func resolveOrderPricing(prod *product.Product, orderType order.Type) (kernel.Money, payment.Type, error) {
	switch orderType {
	case order.TypePurchase:
		amount, err := prod.PurchaseAmount()
		if err != nil {
			return kernel.Money{}, payment.TypeUnknown, err
		}
		return amount, payment.TypePurchase, nil
	case order.TypeRental:
		amount, err := prod.RentalDeposit()
		if err != nil {
			return kernel.Money{}, payment.TypeUnknown, err
		}
		return amount, payment.TypeDeposit, nil
	}
	return kernel.Money{}, payment.TypeUnknown, errs.NewValueIsInvalidError("orderType is invalid")
}
