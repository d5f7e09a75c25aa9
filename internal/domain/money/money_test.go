//go:build unit

package money_test

import (
	"testing"

	"viajes-backoffice/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rounds to cents at construction", func(t *testing.T) {
		cases := []struct {
			name string
			in   string
			want string
		}{
			{name: "already two decimals", in: "100.00", want: "100.00"},
			{name: "half rounds up", in: "2.345", want: "2.35"},
			{name: "below half rounds down", in: "2.344", want: "2.34"},
			{name: "long fraction", in: "99.999999", want: "100.00"},
			{name: "integer", in: "7", want: "7.00"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				m := money.New(decimal.RequireFromString(c.in))
				assert.Equal(t, c.want, m.String())
			})
		}
	})

	t.Run("FromString rejects garbage", func(t *testing.T) {
		_, err := money.FromString("not-a-number")
		require.Error(t, err)
	})

	t.Run("NonNegative rejects negative amounts", func(t *testing.T) {
		_, err := money.NonNegative(decimal.RequireFromString("-0.01"))
		require.ErrorIs(t, err, money.ErrNegativeAmount)

		m, err := money.NonNegative(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}

func TestArithmetic(t *testing.T) {
	t.Run("add and sub stay exact on rounded amounts", func(t *testing.T) {
		a := money.New(decimal.RequireFromString("0.10"))
		b := money.New(decimal.RequireFromString("0.20"))

		assert.Equal(t, "0.30", a.Add(b).String())
		assert.Equal(t, "-0.10", a.Sub(b).String())
	})

	t.Run("mul rounds the product back to cents", func(t *testing.T) {
		total := money.New(decimal.RequireFromString("1000.00"))
		fraction := decimal.RequireFromString("0.015") // 1.5%

		assert.Equal(t, "15.00", total.Mul(fraction).String())

		odd := money.New(decimal.RequireFromString("333.33"))
		assert.Equal(t, "5.00", odd.Mul(fraction).String()) // 4.99995 -> 5.00
	})

	t.Run("div rounds the quotient back to cents", func(t *testing.T) {
		amount := money.New(decimal.RequireFromString("1700.00"))
		rate := decimal.RequireFromString("17")

		assert.Equal(t, "100.00", amount.Div(rate).String())

		assert.Equal(t, "5.88", money.New(decimal.RequireFromString("100.00")).Div(rate).String())
	})
}

func TestComparisons(t *testing.T) {
	small := money.New(decimal.RequireFromString("0.01"))
	big := money.New(decimal.RequireFromString("0.02"))

	assert.True(t, small.Equal(money.Epsilon()))
	assert.True(t, big.GreaterThan(small))
	assert.False(t, small.GreaterThan(big))
	assert.True(t, small.LessThanOrEqual(small))
	assert.True(t, small.LessThanOrEqual(big))
	assert.True(t, money.Zero().IsZero())
	assert.True(t, big.IsPositive())
	assert.True(t, small.Sub(big).IsNegative())
}

func TestEpsilon(t *testing.T) {
	// One cent, always: settlement tolerance must never drift with scale.
	assert.Equal(t, "0.01", money.Epsilon().String())
}
