//go:build unit || e2e

package builder

import (
	"time"

	dompayment "viajes-backoffice/internal/domain/payment"
	reqdto "viajes-backoffice/internal/handler/dto/request"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	SaleID     uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	Base       string
	Rate       decimal.Decimal
	RateSource string
	Method     string
	ManualRate *decimal.Decimal
	ReceivedAt time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		SaleID:     uuid.New(),
		Amount:     decimal.RequireFromString("100.00"),
		Currency:   "MXN",
		Base:       "MXN",
		Rate:       decimal.NewFromInt(1),
		Method:     string(dompayment.MethodCash),
		ReceivedAt: time.Now(),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentBuilder) BuildDomain() (*dompayment.Payment, error) {
	return dompayment.NewPayment(
		b.SaleID,
		moneyOf(b.Amount),
		currency(b.Currency),
		currency(b.Base),
		b.Rate,
		b.RateSource,
		dompayment.Method(b.Method),
		b.ReceivedAt,
	)
}

func (b *PaymentBuilder) BuildRequestDTO() reqdto.PaymentRequest {
	return reqdto.PaymentRequest{
		Amount:     b.Amount,
		Currency:   b.Currency,
		Method:     b.Method,
		ManualRate: b.ManualRate,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	var source *string
	if b.RateSource != "" {
		s := b.RateSource
		source = &s
	}
	return &queries.PaymentView{
		ID:           uuid.New(),
		SaleID:       b.SaleID,
		Amount:       b.Amount,
		Currency:     b.Currency,
		Rate:         b.Rate,
		RateSource:   source,
		AmountInBase: b.Amount.Div(b.Rate).Round(2),
		Method:       b.Method,
		ReceivedAt:   b.ReceivedAt,
	}
}

// Fluent builder methods
func (b *PaymentBuilder) WithSaleID(saleID uuid.UUID) *PaymentBuilder {
	b.SaleID = saleID
	return b
}

func (b *PaymentBuilder) WithAmount(amount string) *PaymentBuilder {
	b.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *PaymentBuilder) WithCurrency(cur string) *PaymentBuilder {
	b.Currency = cur
	return b
}

func (b *PaymentBuilder) WithBase(base string) *PaymentBuilder {
	b.Base = base
	return b
}

func (b *PaymentBuilder) WithRate(rate string, source string) *PaymentBuilder {
	b.Rate = decimal.RequireFromString(rate)
	b.RateSource = source
	return b
}

func (b *PaymentBuilder) WithMethod(method string) *PaymentBuilder {
	b.Method = method
	return b
}

func (b *PaymentBuilder) WithManualRate(rate string) *PaymentBuilder {
	d := decimal.RequireFromString(rate)
	b.ManualRate = &d
	return b
}

func (b *PaymentBuilder) WithReceivedAt(at time.Time) *PaymentBuilder {
	b.ReceivedAt = at
	return b
}
