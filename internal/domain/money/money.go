package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in a single currency, kept at two decimal places.
// Rounding is half-up, once, at construction; arithmetic on already-rounded
// amounts stays exact.
type Money struct {
	amount decimal.Decimal
}

// Epsilon is the settlement tolerance: one cent in the sale's base currency.
func Epsilon() Money {
	return Money{amount: decimal.New(1, -2)}
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func New(d decimal.Decimal) Money {
	return Money{amount: d.Round(2)}
}

func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d.Round(2)}, nil
}

func FromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f).Round(2)}
}

func NonNegative(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d.Round(2)}, nil
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul rounds the product back to cents.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(2)}
}

// Div rounds the quotient back to cents.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{amount: m.amount.Div(divisor).Round(2)}
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
