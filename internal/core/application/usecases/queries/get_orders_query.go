package queries

import (
	"errors"

	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders visible to the acting user. ADMIN sees all
// orders, FRANCHISE_OWNER the orders of customers in their area, SERVICE_AGENT
// the orders assigned to them, CUSTOMER their own. Status and type filters are
// optional.
type GetOrdersQuery struct {
	actor     user.Actor
	status    *order.Status
	orderType *order.Type

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a role-scoped order listing query. Pass nil for a
// filter to leave it open.
func NewGetOrdersQuery(actor user.Actor, status *order.Status, orderType *order.Type) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if orderType != nil {
		if err := orderType.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:     actor,
		status:    status,
		orderType: orderType,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the acting user.
func (q GetOrdersQuery) Actor() user.Actor {
	return q.actor
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderType returns the optional order type filter.
func (q GetOrdersQuery) OrderType() *order.Type {
	return q.orderType
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
