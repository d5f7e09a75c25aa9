package sale

import (
	"errors"
	"time"

	"viajes-backoffice/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTotalPrice     = errors.New("total price must be positive")
	ErrInvalidKind           = errors.New("invalid sale kind")
	ErrPoolRefRequired       = errors.New("pool-backed sale requires a pool reference")
	ErrPoolRefForbidden      = errors.New("general sale cannot reference a pool")
	ErrSaleClosed            = errors.New("sale is closed")
	ErrOverpayment           = errors.New("payment would exceed the total price")
	ErrNonPositivePayment    = errors.New("payment amount must be positive")
	ErrNotSettled            = errors.New("sale is not settled")
	ErrCommissionNotComputed = errors.New("commission has not been computed")
)

// CommissionPolicy yields the vendor rate for a segment as a fraction
// (10% -> 0.10). The policy is consulted exactly once per sale, at the
// moment it settles; the result is frozen on the sale.
type CommissionPolicy interface {
	VendorRate(segment Segment) decimal.Decimal
}

// Sale is one booking. paidAmount accumulates payments converted to the
// sale's base currency; balance is always derived, never stored apart.
type Sale struct {
	id                 uuid.UUID
	kind               Kind
	poolID             *uuid.UUID
	sellerID           uuid.UUID
	occupancy          Occupancy
	currency           money.Currency
	totalPrice         money.Money
	paidAmount         money.Money
	margin             MarginPercent
	commissionAmount   money.Money
	commissionComputed bool
	commissionPaid     bool
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

func NewSale(
	kind Kind,
	sellerID uuid.UUID,
	occupancy Occupancy,
	poolID *uuid.UUID,
	totalPrice money.Money,
	margin MarginPercent,
) (*Sale, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if kind == KindGeneral && poolID != nil {
		return nil, ErrPoolRefForbidden
	}
	if kind != KindGeneral && poolID == nil {
		return nil, ErrPoolRefRequired
	}
	if !totalPrice.IsPositive() {
		return nil, ErrInvalidTotalPrice
	}

	return &Sale{
		id:         uuid.New(),
		kind:       kind,
		poolID:     poolID,
		sellerID:   sellerID,
		occupancy:  occupancy,
		currency:   kind.BaseCurrency(),
		totalPrice: totalPrice,
		paidAmount: money.Zero(),
		margin:     margin,
		status:     StatusActive,
	}, nil
}

func ReconstructSale(
	id uuid.UUID,
	kind Kind,
	poolID *uuid.UUID,
	sellerID uuid.UUID,
	occupancy Occupancy,
	currency money.Currency,
	totalPrice, paidAmount money.Money,
	margin MarginPercent,
	commissionAmount money.Money,
	commissionComputed, commissionPaid bool,
	status Status,
	createdAt, updatedAt time.Time,
) *Sale {
	return &Sale{
		id:                 id,
		kind:               kind,
		poolID:             poolID,
		sellerID:           sellerID,
		occupancy:          occupancy,
		currency:           currency,
		totalPrice:         totalPrice,
		paidAmount:         paidAmount,
		margin:             margin,
		commissionAmount:   commissionAmount,
		commissionComputed: commissionComputed,
		commissionPaid:     commissionPaid,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ApplyPayment accumulates a deposit already converted to the base currency.
// Any payment pushing the paid total past the price is rejected with the
// balance untouched; the one-cent epsilon exists only to detect settlement on
// a residual balance. Returns true when this payment settles the sale; the
// commission is computed and frozen in the same step.
func (s *Sale) ApplyPayment(amountInBase money.Money, policy CommissionPolicy) (bool, error) {
	if s.status == StatusClosed {
		return false, ErrSaleClosed
	}
	if !amountInBase.IsPositive() {
		return false, ErrNonPositivePayment
	}

	newPaid := s.paidAmount.Add(amountInBase)
	if newPaid.GreaterThan(s.totalPrice) {
		return false, ErrOverpayment
	}

	s.paidAmount = newPaid
	if s.status == StatusActive && s.Balance().LessThanOrEqual(money.Epsilon()) {
		s.settle(policy)
		return true, nil
	}
	return false, nil
}

func (s *Sale) settle(policy CommissionPolicy) {
	s.status = StatusSettled
	if !s.commissionComputed {
		s.commissionAmount = s.Profit().Mul(policy.VendorRate(s.kind.Segment()))
		s.commissionComputed = true
	}
}

// CloseWithCommission records the commission payout and ends the lifecycle.
// Only settled sales with a computed commission can close.
func (s *Sale) CloseWithCommission() error {
	if s.status == StatusClosed {
		return ErrSaleClosed
	}
	if s.status != StatusSettled {
		return ErrNotSettled
	}
	if !s.commissionComputed {
		return ErrCommissionNotComputed
	}
	s.commissionPaid = true
	s.status = StatusClosed
	return nil
}

func (s *Sale) Balance() money.Money {
	return s.totalPrice.Sub(s.paidAmount)
}

func (s *Sale) Profit() money.Money {
	return s.totalPrice.Mul(s.margin.Fraction())
}

func (s *Sale) IsActive() bool  { return s.status == StatusActive }
func (s *Sale) IsSettled() bool { return s.status == StatusSettled }
func (s *Sale) IsClosed() bool  { return s.status == StatusClosed }

func (s *Sale) ID() uuid.UUID                 { return s.id }
func (s *Sale) Kind() Kind                    { return s.kind }
func (s *Sale) PoolID() *uuid.UUID            { return s.poolID }
func (s *Sale) SellerID() uuid.UUID           { return s.sellerID }
func (s *Sale) Occupancy() Occupancy          { return s.occupancy }
func (s *Sale) Currency() money.Currency      { return s.currency }
func (s *Sale) TotalPrice() money.Money       { return s.totalPrice }
func (s *Sale) PaidAmount() money.Money       { return s.paidAmount }
func (s *Sale) Margin() MarginPercent         { return s.margin }
func (s *Sale) CommissionAmount() money.Money { return s.commissionAmount }
func (s *Sale) CommissionComputed() bool      { return s.commissionComputed }
func (s *Sale) CommissionPaid() bool          { return s.commissionPaid }
func (s *Sale) Status() Status                { return s.status }
func (s *Sale) CreatedAt() time.Time          { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time          { return s.updatedAt }
