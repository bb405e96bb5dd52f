package commands

import (
	"context"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/services"
	"purelife/internal/core/ports"
)

// InitiatePaymentResult carries everything the client needs to open the
// gateway checkout, including the prefill fields the widget displays.
type InitiatePaymentResult struct {
	OrderID        kernel.UUID
	PaymentID      kernel.UUID
	GatewayOrderID string
	GatewayKeyID   string
	Amount         kernel.Money
	ProductName    string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
}

// InitiatePaymentCommandHandler opens a gateway checkout for an order.
//
// A gateway order is created for the order's total amount, attached to the
// open payment row, and the order moves to PAYMENT_PENDING. The gateway call
// happens before the transaction so a gateway failure leaves nothing half
// written; an orphaned gateway order is harmless and expires on its own.
type InitiatePaymentCommandHandler struct {
	uowFactory  OrderPaymentUoWFactory
	userRepo    ports.UserRepository
	productRepo ports.ProductRepository
	gateway     ports.PaymentGateway
}

// NewInitiatePaymentCommandHandler creates a handler for checkout initiation.
func NewInitiatePaymentCommandHandler(uowFactory OrderPaymentUoWFactory, userRepo ports.UserRepository,
	productRepo ports.ProductRepository, gateway ports.PaymentGateway) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory:  uowFactory,
		userRepo:    userRepo,
		productRepo: productRepo,
		gateway:     gateway,
	}
}

// Handle processes the checkout initiation command.
func (h InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return InitiatePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	policy := services.NewAccessPolicy()
	if err = policy.AuthorizePayment(cmd.Actor(), ord); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = ord.StartPayment(); err != nil {
		return InitiatePaymentResult{}, err
	}

	pmt, err := paymentRepo.GetOpenByOrder(ctx, ord.ID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	prod, err := h.productRepo.Get(ctx, ord.ProductID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	customer, err := h.userRepo.Get(ctx, ord.CustomerID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	intent, err := h.gateway.CreateIntent(ctx, ord.TotalAmount(), ord.ID().String(), map[string]string{
		"orderType":   ord.Type().String(),
		"productName": prod.Name(),
		"customerId":  ord.CustomerID().String(),
		"paymentId":   pmt.ID().String(),
	})
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = pmt.AttachGatewayOrder(intent.GatewayOrderID); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	return InitiatePaymentResult{
		OrderID:        ord.ID(),
		PaymentID:      pmt.ID(),
		GatewayOrderID: intent.GatewayOrderID,
		GatewayKeyID:   h.gateway.KeyID(),
		Amount:         ord.TotalAmount(),
		ProductName:    prod.Name(),
		CustomerName:   customer.Name(),
		CustomerEmail:  customer.Email(),
		CustomerPhone:  customer.Phone(),
	}, nil
}
