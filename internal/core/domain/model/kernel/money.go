package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromFloat, MoneyFromString, or ZeroMoney",
)

// Money is a value object representing a non-negative monetary amount with
// two decimal places. It wraps shopspring/decimal to avoid binary floating
// point artifacts in totals and fees.
//
// The zero value of Money is invalid; amounts must be constructed through
// NewMoney, MoneyFromFloat, MoneyFromString, or ZeroMoney.
//
// Money is immutable: arithmetic methods return new values.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount.
// The amount is rounded to two decimal places and must not be negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(2)
	if rounded.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", rounded.String()),
		)
	}

	return Money{amount: rounded, isConstructed: true}, nil
}

// MoneyFromFloat creates a Money value from a float64 amount.
// Used at the HTTP boundary where JSON numbers arrive as floats.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a Money value from its decimal string representation.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s minus %s is negative", m.amount.String(), other.amount.String()),
		)
	}
	return Money{amount: result, isConstructed: true}, nil
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}
}

// Percent returns the given percentage of the amount, rounded to two
// decimal places. Used for the platform fee.
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{
		amount:        m.amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(2),
		isConstructed: true,
	}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether the amount is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Decimal returns the underlying decimal amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for presentation.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount with two decimal places, e.g. "110.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
