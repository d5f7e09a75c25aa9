package commands

import (
	"context"
	"time"

	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const manualRateSource = "manual"

var one = decimal.NewFromInt(1)

// resolveAppliedRate returns the rate locked onto a payment, expressed in
// payment-currency units per base-currency unit so that amount / rate always
// lands in the base currency. The resolver quotes pesos per dollar; a dollar
// payment into a peso sale therefore uses the inverted quote.
//
// A manually supplied rate always wins. Without one, a resolver failure
// surfaces as ErrRateUnknown and the caller must retry with manual_rate.
func resolveAppliedRate(
	ctx context.Context,
	resolver FXResolver,
	date time.Time,
	currency, base money.Currency,
	manual *decimal.Decimal,
) (decimal.Decimal, string, error) {
	if currency == base {
		return one, "", nil
	}

	if manual != nil {
		if !manual.IsPositive() {
			return decimal.Zero, "", errs.Mark(errs.ErrInvalidRate, errs.ErrDomainValidation)
		}
		return *manual, manualRateSource, nil
	}

	quote, err := resolver.Resolve(ctx, date)
	if err != nil {
		return decimal.Zero, "", errs.Mark(err, errs.ErrRateUnknown)
	}

	if currency == money.MXN && base == money.USD {
		return quote.Rate, quote.Source, nil
	}
	return one.Div(quote.Rate).Round(6), quote.Source, nil
}
