package commands

import (
	"errors"

	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

var ErrNotifyRentalRenewalsCommandIsNotConstructed = errors.New(
	"NotifyRentalRenewalsCommand must be created via NewNotifyRentalRenewalsCommand constructor",
)

// NotifyRentalRenewalsCommand represents a request to remind customers whose
// rental period ends within the given number of days.
type NotifyRentalRenewalsCommand struct { //nolint:recvcheck //using for validation
	windowDays int

	guard guard.ConstructorGuard
}

// NewNotifyRentalRenewalsCommand creates a command with the reminder window.
func NewNotifyRentalRenewalsCommand(windowDays int) (NotifyRentalRenewalsCommand, error) {
	cmd := NotifyRentalRenewalsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWindowDays(windowDays); err != nil {
		return NotifyRentalRenewalsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyRentalRenewalsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyRentalRenewalsCommandIsNotConstructed)
}

// WindowDays returns how many days ahead to look for expiring rentals.
func (c NotifyRentalRenewalsCommand) WindowDays() int {
	return c.windowDays
}

func (c *NotifyRentalRenewalsCommand) setWindowDays(windowDays int) error {
	if windowDays < 1 || windowDays > 60 {
		return errs.NewValueIsOutOfRangeError("windowDays", windowDays, 1, 60)
	}

	c.windowDays = windowDays
	return nil
}
