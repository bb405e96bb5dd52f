package rental

import (
	"errors"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

// InitialPeriodMonths is the minimum tenure a new rental is committed to.
const InitialPeriodMonths = 3

// ErrRentalIsNotConstructed is returned when a Rental was not created through
// NewRental or RestoreRental.
var ErrRentalIsNotConstructed = errors.New("rental must be created via NewRental or RestoreRental")

// Rental is the billing record behind a rented purifier. Exactly one rental
// exists per rental order; it is created when the order reaches INSTALLED and
// its current period is extended as the customer renews.
type Rental struct {
	id                 kernel.UUID
	orderID            kernel.UUID
	customerID         kernel.UUID
	productID          kernel.UUID
	status             Status
	startDate          time.Time
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	monthlyAmount      kernel.Money
	depositAmount      kernel.Money
	createdAt          time.Time
	updatedAt          time.Time

	guard guard.ConstructorGuard
}

// NewRental creates an active rental starting at startDate with the initial
// three-month period. The monthly amount is the product's rent price; the
// deposit is the amount already collected on the order.
func NewRental(orderID kernel.UUID, customerID kernel.UUID, productID kernel.UUID,
	monthlyAmount kernel.Money, depositAmount kernel.Money, startDate time.Time) (*Rental, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := productID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := monthlyAmount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("monthlyAmount", err)
	}
	if err := depositAmount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("depositAmount", err)
	}

	now := time.Now().UTC()
	return &Rental{
		id:                 kernel.NewUUID(),
		orderID:            orderID,
		customerID:         customerID,
		productID:          productID,
		status:             StatusActive,
		startDate:          startDate,
		currentPeriodStart: startDate,
		currentPeriodEnd:   startDate.AddDate(0, InitialPeriodMonths, 0),
		monthlyAmount:      monthlyAmount,
		depositAmount:      depositAmount,
		createdAt:          now,
		updatedAt:          now,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreRental reconstructs a rental from persistence.
func RestoreRental(id kernel.UUID, orderID kernel.UUID, customerID kernel.UUID,
	productID kernel.UUID, status Status, startDate time.Time,
	currentPeriodStart time.Time, currentPeriodEnd time.Time,
	monthlyAmount kernel.Money, depositAmount kernel.Money,
	createdAt time.Time, updatedAt time.Time) (*Rental, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := productID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := monthlyAmount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("monthlyAmount", err)
	}
	if err := depositAmount.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("depositAmount", err)
	}

	return &Rental{
		id:                 id,
		orderID:            orderID,
		customerID:         customerID,
		productID:          productID,
		status:             status,
		startDate:          startDate,
		currentPeriodStart: currentPeriodStart,
		currentPeriodEnd:   currentPeriodEnd,
		monthlyAmount:      monthlyAmount,
		depositAmount:      depositAmount,
		createdAt:          createdAt,
		updatedAt:          updatedAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the rental's unique identifier.
func (r *Rental) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this rental was derived from.
func (r *Rental) OrderID() kernel.UUID {
	return r.orderID
}

// CustomerID returns the renting customer.
func (r *Rental) CustomerID() kernel.UUID {
	return r.customerID
}

// ProductID returns the rented product.
func (r *Rental) ProductID() kernel.UUID {
	return r.productID
}

// Status returns the current rental status.
func (r *Rental) Status() Status {
	return r.status
}

// StartDate returns when the rental began.
func (r *Rental) StartDate() time.Time {
	return r.startDate
}

// CurrentPeriodStart returns when the currently paid-for period began.
func (r *Rental) CurrentPeriodStart() time.Time {
	return r.currentPeriodStart
}

// CurrentPeriodEnd returns when the currently paid-for period ends.
func (r *Rental) CurrentPeriodEnd() time.Time {
	return r.currentPeriodEnd
}

// MonthlyAmount returns the monthly rent in minor currency units.
func (r *Rental) MonthlyAmount() kernel.Money {
	return r.monthlyAmount
}

// DepositAmount returns the refundable deposit held for this rental.
func (r *Rental) DepositAmount() kernel.Money {
	return r.depositAmount
}

// CreatedAt returns when the rental record was created.
func (r *Rental) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the rental was last modified.
func (r *Rental) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsExpiringWithin reports whether the current period ends on or before the
// given moment. Used to pick rentals due for a renewal reminder.
func (r *Rental) IsExpiringWithin(deadline time.Time) bool {
	return r.status == StatusActive && !r.currentPeriodEnd.After(deadline)
}

// ExtendPeriod rolls the rental into its next period after a renewal payment:
// the new period starts where the old one ended and runs for the given number
// of months.
func (r *Rental) ExtendPeriod(months int) error {
	if months <= 0 {
		return errs.NewValueIsOutOfRangeError("months", months, 1, 12)
	}
	if r.status != StatusActive {
		return errs.NewInvalidStateError("only an active rental can be extended")
	}

	r.currentPeriodStart = r.currentPeriodEnd
	r.currentPeriodEnd = r.currentPeriodEnd.AddDate(0, months, 0)
	r.touch()
	return nil
}

// Close ends the rental after the purifier is returned.
func (r *Rental) Close() error {
	if r.status == StatusClosed {
		return errs.NewConflictError("rental is already closed")
	}

	r.status = StatusClosed
	r.touch()
	return nil
}

// Validate checks that the rental was created through a constructor.
func (r *Rental) Validate() error {
	return r.guard.Validate(ErrRentalIsNotConstructed)
}

func (r *Rental) touch() {
	r.updatedAt = time.Now().UTC()
}
