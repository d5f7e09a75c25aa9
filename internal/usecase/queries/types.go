package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type PoolView struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Capacity  int32          `json:"capacity"`
	Committed int32          `json:"committed"`
	Available int32          `json:"available"`
	Rates     []PoolRateView `json:"rates"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Nights    int32          `json:"nights"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

type PoolRateView struct {
	RoomType  string          `json:"room_type"`
	AdultRate decimal.Decimal `json:"adult_rate"`
	ChildRate decimal.Decimal `json:"child_rate"`
}

type SaleView struct {
	ID               uuid.UUID       `json:"id"`
	Kind             string          `json:"kind"`
	PoolID           *uuid.UUID      `json:"pool_id,omitempty"`
	PoolName         *string         `json:"pool_name,omitempty"`
	SellerID         uuid.UUID       `json:"seller_id"`
	Adults           int32           `json:"adults"`
	Children         int32           `json:"children"`
	RoomType         string          `json:"room_type"`
	Currency         string          `json:"currency"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Balance          decimal.Decimal `json:"balance"`
	MarginPercent    decimal.Decimal `json:"margin_percent"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	CommissionPaid   bool            `json:"commission_paid"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type SaleListItem struct {
	ID         uuid.UUID       `json:"id"`
	Kind       string          `json:"kind"`
	Currency   string          `json:"currency"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID           uuid.UUID       `json:"id"`
	SaleID       uuid.UUID       `json:"sale_id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Rate         decimal.Decimal `json:"rate"`
	RateSource   *string         `json:"rate_source,omitempty"`
	AmountInBase decimal.Decimal `json:"amount_in_base"`
	Method       string          `json:"method"`
	ReceivedAt   time.Time       `json:"received_at"`
}

type CommissionEntryView struct {
	ID       uuid.UUID       `json:"id"`
	SellerID uuid.UUID       `json:"seller_id"`
	SaleID   uuid.UUID       `json:"sale_id"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	PaidAt   time.Time       `json:"paid_at"`
	Note     *string         `json:"note,omitempty"`
}

type Cursor struct {
	LastCreatedAt time.Time
	LastID        uuid.UUID
}
