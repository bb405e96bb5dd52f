package order

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// Type distinguishes an outright purchase from a rental. Rental orders spawn a
// rental record once installation completes; purchase orders do not.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypePurchase is an outright sale of a purifier.
	TypePurchase

	// TypeRental is a rental with a refundable deposit and monthly billing.
	TypeRental
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypePurchase: "PURCHASE",
		TypeRental:   "RENTAL",
	}
}

// TypeFromString parses an order type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType is invalid",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t <= TypeUnknown || t > TypeRental {
		return errs.NewValueIsInvalidErrorWithCause("orderType is invalid",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire name of the order type, or "UNKNOWN" for invalid values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
