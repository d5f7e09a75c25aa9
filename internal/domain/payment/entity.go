package payment

import (
	"errors"
	"time"

	"viajes-backoffice/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	ErrNonPositiveRate   = errors.New("exchange rate must be positive")
	ErrInvalidMethod     = errors.New("invalid payment method")
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
	MethodDeposit  Method = "deposit"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodDeposit:
		return true
	default:
		return false
	}
}

// Payment is one deposit against a sale. The exchange rate is locked per
// payment, not per sale: a sale's history can mix currencies as rates move,
// and each entry keeps the rate it was converted at.
type Payment struct {
	id           uuid.UUID
	saleID       uuid.UUID
	amount       money.Money
	currency     money.Currency
	rate         decimal.Decimal
	rateSource   string
	amountInBase money.Money
	method       Method
	receivedAt   time.Time
}

// NewPayment converts the deposit into the sale's base currency. Same
// currency pins the rate to 1; a foreign currency divides by the rate
// (e.g. 1700 MXN at 17.0 into a USD sale is 100.00).
func NewPayment(
	saleID uuid.UUID,
	amount money.Money,
	currency money.Currency,
	base money.Currency,
	rate decimal.Decimal,
	rateSource string,
	method Method,
	receivedAt time.Time,
) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if !currency.IsValid() {
		return nil, money.ErrUnknownCurrency
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}

	var amountInBase money.Money
	if currency == base {
		rate = decimal.NewFromInt(1)
		rateSource = ""
		amountInBase = amount
	} else {
		if !rate.IsPositive() {
			return nil, ErrNonPositiveRate
		}
		amountInBase = amount.Div(rate)
	}

	return &Payment{
		id:           uuid.New(),
		saleID:       saleID,
		amount:       amount,
		currency:     currency,
		rate:         rate,
		rateSource:   rateSource,
		amountInBase: amountInBase,
		method:       method,
		receivedAt:   receivedAt,
	}, nil
}

func ReconstructPayment(
	id, saleID uuid.UUID,
	amount money.Money,
	currency money.Currency,
	rate decimal.Decimal,
	rateSource string,
	amountInBase money.Money,
	method Method,
	receivedAt time.Time,
) *Payment {
	return &Payment{
		id:           id,
		saleID:       saleID,
		amount:       amount,
		currency:     currency,
		rate:         rate,
		rateSource:   rateSource,
		amountInBase: amountInBase,
		method:       method,
		receivedAt:   receivedAt,
	}
}

func (p *Payment) IsForeign() bool {
	return !p.rate.Equal(decimal.NewFromInt(1))
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) SaleID() uuid.UUID         { return p.saleID }
func (p *Payment) Amount() money.Money       { return p.amount }
func (p *Payment) Currency() money.Currency  { return p.currency }
func (p *Payment) Rate() decimal.Decimal     { return p.rate }
func (p *Payment) RateSource() string        { return p.rateSource }
func (p *Payment) AmountInBase() money.Money { return p.amountInBase }
func (p *Payment) Method() Method            { return p.method }
func (p *Payment) ReceivedAt() time.Time     { return p.receivedAt }
