package order

import (
	"errors"
	"fmt"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. It owns the status state
// machine, the order-level payment state, the assigned service agent and the
// scheduled installation date.
//
// Plain status changes go through TransitionTo and are checked against the
// transition table. Agent assignment, installation scheduling and payment
// capture are privileged transitions with their own preconditions and are
// exposed as named methods.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	productID        kernel.UUID
	orderType        Type
	status           Status
	paymentState     PaymentState
	totalAmount      kernel.Money
	serviceAgentID   *kernel.UUID
	installationDate *time.Time
	createdAt        time.Time
	updatedAt        time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in status CREATED with payment PENDING.
// The total amount is the product's buy price for purchases and its refundable
// deposit for rentals; the caller resolves it from the product.
func NewOrder(customerID kernel.UUID, productID kernel.UUID, orderType Type, totalAmount kernel.Money) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := productID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := totalAmount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("totalAmount", err)
	}

	now := time.Now().UTC()
	return &Order{
		id:           kernel.NewUUID(),
		customerID:   customerID,
		productID:    productID,
		orderType:    orderType,
		status:       StatusCreated,
		paymentState: PaymentStatePending,
		totalAmount:  totalAmount,
		createdAt:    now,
		updatedAt:    now,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It trusts the stored
// lifecycle position but still validates every constituent value.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, productID kernel.UUID,
	orderType Type, status Status, paymentState PaymentState, totalAmount kernel.Money,
	serviceAgentID *kernel.UUID, installationDate *time.Time,
	createdAt time.Time, updatedAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := productID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentState.Validate(); err != nil {
		return nil, err
	}
	if err := totalAmount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("totalAmount", err)
	}
	if serviceAgentID != nil {
		if err := serviceAgentID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("serviceAgentId", err)
		}
	}

	return &Order{
		id:               id,
		customerID:       customerID,
		productID:        productID,
		orderType:        orderType,
		status:           status,
		paymentState:     paymentState,
		totalAmount:      totalAmount,
		serviceAgentID:   serviceAgentID,
		installationDate: installationDate,
		createdAt:        createdAt,
		updatedAt:        updatedAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ProductID returns the identifier of the ordered product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Type returns PURCHASE or RENTAL.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentState returns the order-level payment state.
func (o *Order) PaymentState() PaymentState {
	return o.paymentState
}

// TotalAmount returns the amount payable for the order in minor currency units.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ServiceAgentID returns the assigned service agent, or nil when none is assigned.
func (o *Order) ServiceAgentID() *kernel.UUID {
	return o.serviceAgentID
}

// InstallationDate returns the scheduled installation date, or nil when none is scheduled.
func (o *Order) InstallationDate() *time.Time {
	return o.installationDate
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsRental reports whether the order is a rental.
func (o *Order) IsRental() bool {
	return o.orderType == TypeRental
}

// IsAssignedTo reports whether the given agent is the one assigned to this order.
func (o *Order) IsAssignedTo(agentID kernel.UUID) bool {
	return o.serviceAgentID != nil && o.serviceAgentID.IsEqual(agentID)
}

// TransitionTo moves the order to the target status if the transition table
// allows it. Returns *errs.TransitionNotAllowedError otherwise.
func (o *Order) TransitionTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// StartPayment opens the payment window for the order. Allowed while the order
// sits in CREATED or PAYMENT_PENDING; re-initiating an open payment is
// permitted so customers can retry an abandoned checkout.
//
// Returns *errs.ConflictError when payment has already completed and
// *errs.InvalidStateError when the order has moved past the payment window.
func (o *Order) StartPayment() error {
	if o.paymentState == PaymentStateCompleted {
		return errs.NewConflictError("payment has already been completed for this order")
	}
	if o.status != StatusCreated && o.status != StatusPaymentPending {
		return errs.NewInvalidStateError(
			fmt.Sprintf("payment cannot be initiated while the order is %s", o.status))
	}

	o.status = StatusPaymentPending
	o.touch()
	return nil
}

// CompletePayment records a verified payment capture: payment state becomes
// COMPLETED and the order moves to PAYMENT_COMPLETED. This is a privileged
// transition performed by the payment verification flow and does not consult
// the transition table.
func (o *Order) CompletePayment() error {
	if o.paymentState == PaymentStateCompleted {
		return errs.NewConflictError("payment has already been completed for this order")
	}

	o.paymentState = PaymentStateCompleted
	o.status = StatusPaymentCompleted
	o.touch()
	return nil
}

// AssignAgent sets the service agent and moves the order to ASSIGNED. This is
// a privileged transition: it requires a completed payment rather than a
// transition-table entry, so an agent can be re-assigned while the order is
// ASSIGNED or INSTALLATION_PENDING.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceAgentId", err)
	}
	if o.paymentState != PaymentStateCompleted {
		return errs.NewInvalidStateError("an agent can only be assigned after payment has completed")
	}
	if o.status.IsTerminal() {
		return errs.NewTransitionNotAllowedError(o.status.String(), StatusAssigned.String())
	}

	o.serviceAgentID = &agentID
	o.status = StatusAssigned
	o.touch()
	return nil
}

// ScheduleInstallation sets the installation date and moves the order to
// INSTALLATION_PENDING. The date must be strictly in the future relative to
// now. This is a privileged transition: rescheduling is allowed from any
// non-terminal post-payment status.
func (o *Order) ScheduleInstallation(installationDate time.Time, now time.Time) error {
	if !installationDate.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("installationDate is invalid",
			fmt.Errorf("%s is not in the future", installationDate.Format(time.RFC3339)))
	}
	if o.paymentState != PaymentStateCompleted {
		return errs.NewInvalidStateError("installation can only be scheduled after payment has completed")
	}
	if o.status.IsTerminal() {
		return errs.NewTransitionNotAllowedError(o.status.String(), StatusInstallationPending.String())
	}

	o.installationDate = &installationDate
	o.status = StatusInstallationPending
	o.touch()
	return nil
}

// Validate checks that the order was created through a constructor.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
