package kernel

import (
	"fmt"

	"ordersvc/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount with exact decimal
// arithmetic. Monetary fields must never use floating point; Money keeps a
// fixed-point representation with at least two fractional digits of scale.
//
// Money is immutable: arithmetic methods return a new value. The zero value
// of Money is a valid zero amount, so Money can be embedded in aggregates
// without a constructor guard.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("10000")
//	if err != nil {
//	    // handle invalid amount
//	}
//	subtotal := price.MulInt(2)
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Fails with a value-is-invalid error if the amount is negative; caller-supplied
// monetary inputs (prices, discounts, taxes, shipping) must be >= 0.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "10000" or "1234.56".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// RestoreMoney rebuilds a Money from persistence without the non-negative
// check. Derived amounts (an order's final amount, for example) may be
// negative and still need to round-trip through the store.
func RestoreMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares two amounts by numeric value, ignoring scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
