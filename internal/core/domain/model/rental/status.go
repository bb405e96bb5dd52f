package rental

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// Status is the lifecycle state of a rental.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive indicates the rental is running and billable.
	StatusActive

	// StatusClosed indicates the rental ended and the purifier was returned.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		StatusActive:  "ACTIVE",
		StatusClosed:  "CLOSED",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid rental status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusClosed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid rental status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
