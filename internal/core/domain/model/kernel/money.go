package kernel

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// CurrencyINR is the only currency the business operates in today.
// Amounts are held in paise, the minor unit of INR.
const CurrencyINR = "INR"

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object holding a monetary amount in minor currency units
// (paise for INR) together with its ISO 4217 currency code. Keeping amounts in
// minor units avoids floating point issues and matches what the payment gateway
// expects on the wire.
//
// The zero value of Money is invalid; use NewMoney.
//
// Example:
//
//	deposit, err := kernel.NewMoney(150000, kernel.CurrencyINR) // ₹1500.00
//	if err != nil {
//	    // handle error
//	}
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a Money value from an amount in minor units and a currency code.
// The amount must be positive and the currency code must be a three-letter ISO code.
func NewMoney(amountMinorUnits int64, currency string) (Money, error) {
	if amountMinorUnits <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%d is not greater than 0", amountMinorUnits))
	}

	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency is invalid",
			fmt.Errorf("%q is not a three-letter ISO 4217 code", currency))
	}

	return Money{amount: amountMinorUnits, currency: currency}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String formats the amount with its currency, e.g. "150000 INR".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// Validate checks that the Money value was created through NewMoney.
func (m Money) Validate() error {
	if m.currency == "" {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
