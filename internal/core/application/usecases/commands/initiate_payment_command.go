package commands

import (
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand represents a request to open a gateway checkout for
// an order. Safe to repeat: an abandoned checkout is replaced by a fresh
// gateway order.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to open a checkout for the order.
func NewInitiatePaymentCommand(actor user.Actor, orderID kernel.UUID) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c InitiatePaymentCommand) Actor() user.Actor {
	return c.actor
}

// OrderID returns the order to pay for.
func (c InitiatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *InitiatePaymentCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *InitiatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
