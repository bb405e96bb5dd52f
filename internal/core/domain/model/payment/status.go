package payment

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// Status is the lifecycle state of a payment attempt.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending indicates the payment has been created but not captured.
	StatusPending

	// StatusCompleted indicates the gateway signature was verified and the
	// payment captured.
	StatusCompleted

	// StatusFailed indicates signature verification failed.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusCompleted: "COMPLETED",
		StatusFailed:    "FAILED",
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
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusFailed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
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
