package services

import (
	"fmt"

	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"
)

// AccessPolicy is a domain service that decides whether an actor may perform
// an operation on an order. Scoping rules:
//
//   - ADMIN acts on any order.
//   - FRANCHISE_OWNER acts on orders whose customer belongs to the owner's
//     franchise area.
//   - SERVICE_AGENT acts only on orders assigned to them.
//   - CUSTOMER acts only on their own orders, and the only status change they
//     may request is cancellation.
//
// Every Authorize* method returns nil when the operation is allowed and
// *errs.OperationForbiddenError otherwise. Callers resolve the order's
// customer first; the customer's franchise area is what owner scoping is
// checked against.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// AuthorizeView checks whether the actor may read the order.
func (p AccessPolicy) AuthorizeView(actor user.Actor, ord *order.Order, customer *user.User) error {
	if err := p.validateInputs(actor, ord, customer); err != nil {
		return err
	}

	switch actor.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleFranchiseOwner:
		return p.requireSameArea(actor, customer)
	case user.RoleServiceAgent:
		if ord.IsAssignedTo(actor.ID) {
			return nil
		}
		return errs.NewOperationForbiddenError("agents can only view orders assigned to them")
	case user.RoleCustomer:
		if ord.CustomerID().IsEqual(actor.ID) {
			return nil
		}
		return errs.NewOperationForbiddenError("customers can only view their own orders")
	}
	return errs.NewOperationForbiddenError(fmt.Sprintf("role %s cannot view orders", actor.Role))
}

// AuthorizeStatusChange checks whether the actor may request the given status
// transition. The transition table itself is enforced by the order aggregate;
// this method only answers who may ask.
func (p AccessPolicy) AuthorizeStatusChange(actor user.Actor, ord *order.Order, customer *user.User, target order.Status) error {
	if err := p.validateInputs(actor, ord, customer); err != nil {
		return err
	}

	switch actor.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleFranchiseOwner:
		return p.requireSameArea(actor, customer)
	case user.RoleServiceAgent:
		if !ord.IsAssignedTo(actor.ID) {
			return errs.NewOperationForbiddenError("agents can only update orders assigned to them")
		}
		return nil
	case user.RoleCustomer:
		if !ord.CustomerID().IsEqual(actor.ID) {
			return errs.NewOperationForbiddenError("customers can only update their own orders")
		}
		if target != order.StatusCancelled {
			return errs.NewOperationForbiddenError("customers can only cancel their orders")
		}
		return nil
	}
	return errs.NewOperationForbiddenError(fmt.Sprintf("role %s cannot change order status", actor.Role))
}

// AuthorizeAssignAgent checks whether the actor may assign a service agent to
// the order. Only admins and the franchise owner of the customer's area may.
func (p AccessPolicy) AuthorizeAssignAgent(actor user.Actor, ord *order.Order, customer *user.User) error {
	if err := p.validateInputs(actor, ord, customer); err != nil {
		return err
	}

	switch actor.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleFranchiseOwner:
		return p.requireSameArea(actor, customer)
	}
	return errs.NewOperationForbiddenError(
		fmt.Sprintf("role %s cannot assign service agents", actor.Role))
}

// AuthorizeScheduleInstallation checks whether the actor may set the order's
// installation date: admins, the franchise owner of the customer's area, or
// the agent assigned to the order.
func (p AccessPolicy) AuthorizeScheduleInstallation(actor user.Actor, ord *order.Order, customer *user.User) error {
	if err := p.validateInputs(actor, ord, customer); err != nil {
		return err
	}

	switch actor.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleFranchiseOwner:
		return p.requireSameArea(actor, customer)
	case user.RoleServiceAgent:
		if ord.IsAssignedTo(actor.ID) {
			return nil
		}
		return errs.NewOperationForbiddenError("agents can only schedule orders assigned to them")
	}
	return errs.NewOperationForbiddenError(
		fmt.Sprintf("role %s cannot schedule installations", actor.Role))
}

// AuthorizePayment checks whether the actor may initiate or verify payment on
// the order: the owning customer, or an admin acting on their behalf.
func (p AccessPolicy) AuthorizePayment(actor user.Actor, ord *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := ord.Validate(); err != nil {
		return err
	}

	switch actor.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleCustomer:
		if ord.CustomerID().IsEqual(actor.ID) {
			return nil
		}
		return errs.NewOperationForbiddenError("customers can only pay for their own orders")
	}
	return errs.NewOperationForbiddenError(
		fmt.Sprintf("role %s cannot operate payments", actor.Role))
}

func (p AccessPolicy) validateInputs(actor user.Actor, ord *order.Order, customer *user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := ord.Validate(); err != nil {
		return err
	}
	return customer.Validate()
}

func (p AccessPolicy) requireSameArea(actor user.Actor, customer *user.User) error {
	if actor.FranchiseAreaID == nil || customer.FranchiseAreaID() == nil {
		return errs.NewOperationForbiddenError("franchise owners can only act within their own area")
	}
	if !actor.FranchiseAreaID.IsEqual(*customer.FranchiseAreaID()) {
		return errs.NewOperationForbiddenError("franchise owners can only act within their own area")
	}
	return nil
}
