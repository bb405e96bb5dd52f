package queries

import (
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists a customer's own orders, newest first. With no
// status filter it returns the statuses that matter after checkout:
// PAYMENT_COMPLETED through COMPLETED. Orders still in checkout or cancelled
// show up only when asked for explicitly.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	status     *order.Status
	orderType  *order.Type

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a customer order listing query. Pass nil
// for a filter to leave it open.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	status *order.Status,
	orderType *order.Type,
) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
	}
	if orderType != nil {
		if err := orderType.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		orderType:  orderType,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Status returns the optional status filter.
func (q GetCustomerOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderType returns the optional order type filter.
func (q GetCustomerOrdersQuery) OrderType() *order.Type {
	return q.orderType
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}
