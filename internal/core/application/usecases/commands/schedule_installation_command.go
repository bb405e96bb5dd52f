package commands

import (
	"errors"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

var ErrScheduleInstallationCommandIsNotConstructed = errors.New(
	"ScheduleInstallationCommand must be created via NewScheduleInstallationCommand constructor",
)

// ScheduleInstallationCommand represents a request to set or move an order's
// installation date.
type ScheduleInstallationCommand struct { //nolint:recvcheck //using for validation
	actor            user.Actor
	orderID          kernel.UUID
	installationDate time.Time

	guard guard.ConstructorGuard
}

// NewScheduleInstallationCommand creates a command to schedule an installation.
// The date must not be the zero time; the future check against the clock
// happens in the order aggregate when the command is handled.
func NewScheduleInstallationCommand(actor user.Actor, orderID kernel.UUID, installationDate time.Time) (ScheduleInstallationCommand, error) {
	cmd := ScheduleInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setInstallationDate(installationDate),
	); err != nil {
		return ScheduleInstallationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleInstallationCommand) Validate() error {
	return c.guard.Validate(ErrScheduleInstallationCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ScheduleInstallationCommand) Actor() user.Actor {
	return c.actor
}

// OrderID returns the order to schedule.
func (c ScheduleInstallationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InstallationDate returns the requested installation date.
func (c ScheduleInstallationCommand) InstallationDate() time.Time {
	return c.installationDate
}

func (c *ScheduleInstallationCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ScheduleInstallationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ScheduleInstallationCommand) setInstallationDate(installationDate time.Time) error {
	if installationDate.IsZero() {
		return errs.NewValueIsRequiredError("installationDate")
	}

	c.installationDate = installationDate
	return nil
}
