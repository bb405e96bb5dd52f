package payment

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// Type records what the payment is for: the full purchase price of a purifier
// or the refundable deposit on a rental.
type Type int

const (
	// TypeUnknown represents an invalid or undefined payment type.
	TypeUnknown Type = iota

	// TypePurchase is a payment of the full buy price.
	TypePurchase

	// TypeDeposit is a payment of the refundable rental deposit.
	TypeDeposit
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypePurchase: "PURCHASE",
		TypeDeposit:  "DEPOSIT",
	}
}

// TypeFromString parses a payment type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("paymentType is invalid",
		fmt.Errorf("%q is not a valid payment type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t <= TypeUnknown || t > TypeDeposit {
		return errs.NewValueIsInvalidErrorWithCause("paymentType is invalid",
			fmt.Errorf("%d is not a valid payment type", t))
	}
	return nil
}

// String returns the wire name of the payment type, or "UNKNOWN" for invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
