package commands

import (
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a purchase or rental order
// for a catalog product.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, productID, order.TypeRental)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, userRepo, productRepo, notifier, logger)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor     user.Actor
	productID kernel.UUID
	orderType order.Type

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. The actor must
// be the ordering customer; admins place orders through a separate back-office
// flow that is out of scope here.
func NewCreateOrderCommand(actor user.Actor, productID kernel.UUID, orderType order.Type) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setOrderType(orderType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c CreateOrderCommand) Actor() user.Actor {
	return c.actor
}

// ProductID returns the catalog product being ordered.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// OrderType returns PURCHASE or RENTAL.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c *CreateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}
