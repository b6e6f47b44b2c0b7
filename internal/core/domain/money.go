package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every monetary value is held at.
const moneyScale = 2

// Money is an immutable monetary value with a fixed scale of two decimal
// places. Arithmetic is exact at that scale; equality and ordering compare
// numeric value, never reference.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero monetary value.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal, rounding to the fixed scale.
func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyScale)}
}

// MoneyFromString parses a decimal string into a Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid monetary amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// MoneyFromFloat creates a Money from a float64, rejecting non-finite values.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("invalid monetary amount %v", f)
	}
	return NewMoney(decimal.NewFromFloat(f)), nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// Cmp compares m with other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports whether m and other represent the same value.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// LessThanOrEqual reports whether m <= other.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal value at the fixed scale.
func (m Money) Decimal() decimal.Decimal {
	return m.amount.Round(moneyScale)
}

// String renders the value with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// MarshalJSON renders the value as a JSON string, e.g. "150.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.amount = d.Round(moneyScale)
	return nil
}
