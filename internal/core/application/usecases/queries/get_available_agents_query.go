package queries

import (
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/guard"
)

var ErrGetAvailableAgentsQueryIsNotConstructed = errors.New(
	"GetAvailableAgentsQuery must be created via NewGetAvailableAgentsQuery constructor",
)

// GetAvailableAgentsQuery lists the service agents eligible for an order:
// active agents of the customer's franchise area plus global agents. A
// customer without an area can only be served by global agents.
type GetAvailableAgentsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableAgentsQuery creates an eligible agent listing query for an order.
func NewGetAvailableAgentsQuery(orderID kernel.UUID) (GetAvailableAgentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAvailableAgentsQuery{}, err
	}

	return GetAvailableAgentsQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order the agents are matched against.
func (q GetAvailableAgentsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableAgentsQueryIsNotConstructed)
}

// AgentView is one eligible service agent in the listing. Global agents carry
// no area and are labelled "Global Agent".
type AgentView struct {
	ID                kernel.UUID
	Name              string
	Email             string
	Phone             string
	FranchiseAreaID   *kernel.UUID
	FranchiseAreaName string
	IsGlobalAgent     bool
}
