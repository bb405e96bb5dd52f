package payment

import (
	"errors"
	"fmt"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created through
// NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("payment must be created via NewPayment or RestorePayment")

// Payment is the authoritative record of a payment attempt against an order.
// It starts PENDING with no gateway identifiers, picks up the gateway order id
// when checkout is initiated, and finishes COMPLETED (with the gateway payment
// id) or FAILED after signature verification.
type Payment struct {
	id               kernel.UUID
	orderID          kernel.UUID
	amount           kernel.Money
	paymentType      Type
	status           Status
	gatewayOrderID   *string
	gatewayPaymentID *string
	createdAt        time.Time
	updatedAt        time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a pending payment for the given order.
func NewPayment(orderID kernel.UUID, amount kernel.Money, paymentType Type) (*Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := amount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("amount", err)
	}
	if err := paymentType.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Payment{
		id:          kernel.NewUUID(),
		orderID:     orderID,
		amount:      amount,
		paymentType: paymentType,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(id kernel.UUID, orderID kernel.UUID, amount kernel.Money,
	paymentType Type, status Status, gatewayOrderID *string, gatewayPaymentID *string,
	createdAt time.Time, updatedAt time.Time) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := amount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("amount", err)
	}
	if err := paymentType.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:               id,
		orderID:          orderID,
		amount:           amount,
		paymentType:      paymentType,
		status:           status,
		gatewayOrderID:   gatewayOrderID,
		gatewayPaymentID: gatewayPaymentID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this payment belongs to.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the payable amount in minor currency units.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Type returns PURCHASE or DEPOSIT.
func (p *Payment) Type() Type {
	return p.paymentType
}

// Status returns the current payment status.
func (p *Payment) Status() Status {
	return p.status
}

// GatewayOrderID returns the gateway-side order identifier, or nil before checkout.
func (p *Payment) GatewayOrderID() *string {
	return p.gatewayOrderID
}

// GatewayPaymentID returns the gateway-side payment identifier, or nil until capture.
func (p *Payment) GatewayPaymentID() *string {
	return p.gatewayPaymentID
}

// CreatedAt returns when the payment row was created.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the payment was last modified.
func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// AttachGatewayOrder records the gateway order id opened for this payment.
// Re-attaching is allowed while the payment is still pending so an abandoned
// checkout can be re-initiated with a fresh gateway order.
func (p *Payment) AttachGatewayOrder(gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gatewayOrderId")
	}
	if p.status == StatusCompleted {
		return errs.NewConflictError("payment has already been completed")
	}

	p.gatewayOrderID = &gatewayOrderID
	p.status = StatusPending
	p.touch()
	return nil
}

// Complete marks the payment captured and records the gateway payment id.
// Requires a gateway order to have been attached first.
func (p *Payment) Complete(gatewayPaymentID string) error {
	if gatewayPaymentID == "" {
		return errs.NewValueIsRequiredError("gatewayPaymentId")
	}
	if p.status == StatusCompleted {
		return errs.NewConflictError("payment has already been completed")
	}
	if p.gatewayOrderID == nil {
		return errs.NewInvalidStateError(
			fmt.Sprintf("payment %s cannot be completed before checkout was initiated", p.id))
	}

	p.gatewayPaymentID = &gatewayPaymentID
	p.status = StatusCompleted
	p.touch()
	return nil
}

// Fail marks the payment attempt as failed after signature verification did
// not match. The gateway order id is kept for audit.
func (p *Payment) Fail() {
	p.status = StatusFailed
	p.touch()
}

// Validate checks that the payment was created through a constructor.
func (p *Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) touch() {
	p.updatedAt = time.Now().UTC()
}
