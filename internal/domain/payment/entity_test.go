//go:build unit

package payment_test

import (
	"testing"

	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/domain/payment"
	"viajes-backoffice/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("same currency pins the rate to one", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().
			WithRate("17.5", "banxico"). // caller-supplied rate is ignored
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, p.Rate().Equal(decimal.NewFromInt(1)))
		assert.Empty(t, p.RateSource())
		assert.Equal(t, "100.00", p.AmountInBase().String())
		assert.False(t, p.IsForeign())
	})

	t.Run("foreign currency divides by the locked rate", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().
			WithAmount("1700.00").
			WithCurrency("MXN").
			WithBase("USD").
			WithRate("17", "banxico").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "100.00", p.AmountInBase().String())
		assert.Equal(t, "banxico", p.RateSource())
		assert.True(t, p.IsForeign())
	})

	t.Run("conversion rounds to cents", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().
			WithAmount("100.00").
			WithBase("USD").
			WithRate("17", "manual").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "5.88", p.AmountInBase().String())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.PaymentBuilder)
			errIs  error
		}{
			{
				name:   "zero amount",
				mutate: func(b *builder.PaymentBuilder) { b.Amount = decimal.Zero },
				errIs:  payment.ErrNonPositiveAmount,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.PaymentBuilder) { b.WithAmount("-5.00") },
				errIs:  payment.ErrNonPositiveAmount,
			},
			{
				name:   "unknown currency",
				mutate: func(b *builder.PaymentBuilder) { b.WithCurrency("EUR") },
				errIs:  money.ErrUnknownCurrency,
			},
			{
				name:   "unknown method",
				mutate: func(b *builder.PaymentBuilder) { b.WithMethod("cheque") },
				errIs:  payment.ErrInvalidMethod,
			},
			{
				name: "zero rate on a foreign deposit",
				mutate: func(b *builder.PaymentBuilder) {
					b.WithBase("USD").WithRate("0", "manual")
				},
				errIs: payment.ErrNonPositiveRate,
			},
			{
				name: "negative rate on a foreign deposit",
				mutate: func(b *builder.PaymentBuilder) {
					b.WithBase("USD").WithRate("-17", "manual")
				},
				errIs: payment.ErrNonPositiveRate,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewPaymentBuilder().With(c.mutate).BuildDomain()
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}
