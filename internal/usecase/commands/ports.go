package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FXQuote is one resolved exchange rate: pesos per dollar, plus a label
// naming the source (annotated when a weekend substitution happened).
type FXQuote struct {
	Rate   decimal.Decimal
	Source string
}

// FXResolver is the external rate service contract. Resolution failure is
// never fatal to the caller: errs.ErrRateUnknown means a manually supplied
// rate is required. The resolver has no retry policy of its own.
type FXResolver interface {
	Resolve(ctx context.Context, date time.Time) (FXQuote, error)
}
