//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	quote FXQuote
	err   error
}

func (s stubResolver) Resolve(_ context.Context, _ time.Time) (FXQuote, error) {
	return s.quote, s.err
}

func TestResolveAppliedRate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	banxico := stubResolver{quote: FXQuote{Rate: decimal.NewFromInt(17), Source: "banxico"}}

	t.Run("same currency needs no rate", func(t *testing.T) {
		rate, source, err := resolveAppliedRate(ctx, banxico, date, money.MXN, money.MXN, nil)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(1)))
		assert.Empty(t, source)
	})

	t.Run("manual rate wins over the resolver", func(t *testing.T) {
		manual := decimal.RequireFromString("18.20")
		rate, source, err := resolveAppliedRate(ctx, banxico, date, money.MXN, money.USD, &manual)
		require.NoError(t, err)
		assert.True(t, rate.Equal(manual))
		assert.Equal(t, "manual", source)
	})

	t.Run("non-positive manual rate is a validation error", func(t *testing.T) {
		zero := decimal.Zero
		_, _, err := resolveAppliedRate(ctx, banxico, date, money.MXN, money.USD, &zero)
		require.Error(t, err)
		require.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("pesos into a dollar sale use the quote as published", func(t *testing.T) {
		rate, source, err := resolveAppliedRate(ctx, banxico, date, money.MXN, money.USD, nil)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(17)))
		assert.Equal(t, "banxico", source)
	})

	t.Run("dollars into a peso sale invert the quote", func(t *testing.T) {
		rate, source, err := resolveAppliedRate(ctx, banxico, date, money.USD, money.MXN, nil)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("0.058824")))
		assert.Equal(t, "banxico", source)
	})

	t.Run("resolver failure degrades to rate unknown", func(t *testing.T) {
		failing := stubResolver{err: errors.New("banxico unreachable")}
		_, _, err := resolveAppliedRate(ctx, failing, date, money.MXN, money.USD, nil)
		require.Error(t, err)
		require.True(t, errs.Is(err, errs.ErrRateUnknown))
	})
}
