package order

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// PaymentState is the order-level summary of payment progress. It is kept on
// the order itself so listings and authorization checks do not need to join
// against payment rows. The payment aggregate holds the authoritative gateway
// detail.
type PaymentState int

const (
	// PaymentStateUnknown represents an invalid or undefined payment state.
	PaymentStateUnknown PaymentState = iota

	// PaymentStatePending indicates payment has not been captured yet.
	PaymentStatePending

	// PaymentStateCompleted indicates payment was verified and captured.
	PaymentStateCompleted

	// PaymentStateFailed indicates the last payment attempt failed verification.
	PaymentStateFailed
)

func getPaymentStateStrings() map[PaymentState]string {
	return map[PaymentState]string{
		PaymentStateUnknown:   "UNKNOWN",
		PaymentStatePending:   "PENDING",
		PaymentStateCompleted: "COMPLETED",
		PaymentStateFailed:    "FAILED",
	}
}

// PaymentStateFromString parses a payment state from its wire representation.
func PaymentStateFromString(s string) (PaymentState, error) {
	for state, str := range getPaymentStateStrings() {
		if str == s && state != PaymentStateUnknown {
			return state, nil
		}
	}
	return PaymentStateUnknown, errs.NewValueIsInvalidErrorWithCause("paymentState is invalid",
		fmt.Errorf("%q is not a valid payment state", s))
}

// Validate checks if the PaymentState value is valid.
func (p PaymentState) Validate() error {
	if p <= PaymentStateUnknown || p > PaymentStateFailed {
		return errs.NewValueIsInvalidErrorWithCause("paymentState is invalid",
			fmt.Errorf("%d is not a valid payment state", p))
	}
	return nil
}

// String returns the wire name of the payment state, or "UNKNOWN" for invalid values.
func (p PaymentState) String() string {
	if str, ok := getPaymentStateStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
