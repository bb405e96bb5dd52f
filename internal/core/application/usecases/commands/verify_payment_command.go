package commands

import (
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand represents the gateway checkout callback: the gateway
// order id the checkout was opened for, the gateway payment id produced by the
// capture, and the signature over "gatewayOrderId|gatewayPaymentId".
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	actor            user.Actor
	orderID          kernel.UUID
	gatewayOrderID   string
	gatewayPaymentID string
	signature        string

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command to verify a checkout callback.
func NewVerifyPaymentCommand(actor user.Actor, orderID kernel.UUID,
	gatewayOrderID string, gatewayPaymentID string, signature string) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setGatewayOrderID(gatewayOrderID),
		cmd.setGatewayPaymentID(gatewayPaymentID),
		cmd.setSignature(signature),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c VerifyPaymentCommand) Actor() user.Actor {
	return c.actor
}

// OrderID returns the order the callback refers to.
func (c VerifyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GatewayOrderID returns the gateway-side order identifier.
func (c VerifyPaymentCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

// GatewayPaymentID returns the gateway-side payment identifier.
func (c VerifyPaymentCommand) GatewayPaymentID() string {
	return c.gatewayPaymentID
}

// Signature returns the callback signature.
func (c VerifyPaymentCommand) Signature() string {
	return c.signature
}

func (c *VerifyPaymentCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *VerifyPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPaymentCommand) setGatewayOrderID(gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return errs.NewValueIsRequiredError("gatewayOrderId")
	}

	c.gatewayOrderID = gatewayOrderID
	return nil
}

func (c *VerifyPaymentCommand) setGatewayPaymentID(gatewayPaymentID string) error {
	if gatewayPaymentID == "" {
		return errs.NewValueIsRequiredError("gatewayPaymentId")
	}

	c.gatewayPaymentID = gatewayPaymentID
	return nil
}

func (c *VerifyPaymentCommand) setSignature(signature string) error {
	if signature == "" {
		return errs.NewValueIsRequiredError("signature")
	}

	c.signature = signature
	return nil
}
