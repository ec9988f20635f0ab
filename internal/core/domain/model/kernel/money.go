package kernel

import (
	"fmt"

	"cardmarket/internal/pkg/errs"
)

// DefaultCurrency is the currency assumed by the marketplace when none is
// given explicitly.
const DefaultCurrency = "ARS"

// ErrMoneyIsNotConstructed indicates that a Money value was not created via
// NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a monetary amount in integer cents with
// an ISO-4217 currency code. It is used for per-purchase shipment pricing and
// purchase totals.
//
// Money is immutable; arithmetic returns new values. The zero value is invalid
// and must be constructed via NewMoney.
type Money struct {
	cents    int64
	currency string

	isConstructed bool
}

// NewMoney creates a Money value. Cents must be non-negative and currency must
// be a three-letter code.
func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("cents",
			fmt.Errorf("%d is negative", cents))
	}
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter code", currency))
	}

	return Money{
		cents:         cents,
		currency:      currency,
		isConstructed: true,
	}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the ISO-4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%s and %s differ", m.currency, other.currency))
	}

	return NewMoney(m.cents+other.cents, m.currency)
}

// MultiplyBy returns the amount scaled by a non-negative integer factor.
func (m Money) MultiplyBy(factor int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}

	return NewMoney(m.cents*factor, m.currency)
}

// IsEqual compares two Money values for equality of amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// String renders the amount as "12.34 ARS".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.cents/100, m.cents%100, m.currency)
}

// Validate checks that the Money value was created via NewMoney.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
