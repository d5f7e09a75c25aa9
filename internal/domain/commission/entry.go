package commission

import (
	"errors"
	"time"

	"viajes-backoffice/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount = errors.New("commission amount cannot be negative")
	ErrInvalidMethod  = errors.New("invalid payout method")
)

type PayoutMethod string

const (
	PayoutCash     PayoutMethod = "cash"
	PayoutTransfer PayoutMethod = "transfer"
)

func (m PayoutMethod) String() string {
	return string(m)
}

func (m PayoutMethod) IsValid() bool {
	switch m {
	case PayoutCash, PayoutTransfer:
		return true
	default:
		return false
	}
}

// LedgerEntry records one commission payout. Creating an entry is what moves
// the backing sale from Settled to Closed.
type LedgerEntry struct {
	id       uuid.UUID
	sellerID uuid.UUID
	saleID   uuid.UUID
	amount   money.Money
	method   PayoutMethod
	paidAt   time.Time
	note     string
}

func NewLedgerEntry(
	sellerID, saleID uuid.UUID,
	amount money.Money,
	method PayoutMethod,
	paidAt time.Time,
	note string,
) (*LedgerEntry, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &LedgerEntry{
		id:       uuid.New(),
		sellerID: sellerID,
		saleID:   saleID,
		amount:   amount,
		method:   method,
		paidAt:   paidAt,
		note:     note,
	}, nil
}

func ReconstructLedgerEntry(
	id, sellerID, saleID uuid.UUID,
	amount money.Money,
	method PayoutMethod,
	paidAt time.Time,
	note string,
) *LedgerEntry {
	return &LedgerEntry{
		id:       id,
		sellerID: sellerID,
		saleID:   saleID,
		amount:   amount,
		method:   method,
		paidAt:   paidAt,
		note:     note,
	}
}

func (e *LedgerEntry) ID() uuid.UUID       { return e.id }
func (e *LedgerEntry) SellerID() uuid.UUID { return e.sellerID }
func (e *LedgerEntry) SaleID() uuid.UUID   { return e.saleID }
func (e *LedgerEntry) Amount() money.Money { return e.amount }
func (e *LedgerEntry) Method() PayoutMethod {
	return e.method
}
func (e *LedgerEntry) PaidAt() time.Time { return e.paidAt }
func (e *LedgerEntry) Note() string      { return e.note }
