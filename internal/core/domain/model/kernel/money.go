package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits carried by every Money value.
const moneyScale = 2

// Money is an immutable non-negative monetary amount with two fractional
// digits. Every arithmetic result is rounded half up to the fixed scale, so
// repeated recomputation of the same product or sum yields identical values.
//
// The zero value is a valid 0.00 amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a raw decimal, rounding to two fractional
// digits. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount))
	}
	// decimal.Round rounds half away from zero, which is half up for the
	// non-negative amounts Money permits.
	return Money{amount: amount.Round(moneyScale)}, nil
}

// MoneyFromString parses a decimal string such as "24.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromFloat converts a float64 amount, for transport-layer input.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyScale)}
}

// MulQuantity returns the amount multiplied by an integer quantity,
// rounded half up to the fixed scale.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal, used by persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64, for transport responses.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with exactly two fractional digits, e.g. "57.97".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
