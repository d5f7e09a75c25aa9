//go:build unit || e2e

package builder

import (
	"time"

	domsale "viajes-backoffice/internal/domain/sale"
	reqdto "viajes-backoffice/internal/handler/dto/request"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleBuilder struct {
	SellerID       uuid.UUID
	Kind           string
	PoolID         *uuid.UUID
	Adults         int
	Children       int
	RoomType       string
	Currency       string
	TotalPrice     decimal.Decimal
	PaidAmount     decimal.Decimal
	MarginPercent  decimal.Decimal
	Status         string
	InitialPayment *reqdto.PaymentRequest
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewSaleBuilder() *SaleBuilder {
	now := time.Now()
	return &SaleBuilder{
		SellerID:      uuid.New(),
		Kind:          string(domsale.KindGeneral),
		Adults:        2,
		Children:      1,
		RoomType:      "double",
		Currency:      "MXN",
		TotalPrice:    decimal.RequireFromString("1000.00"),
		PaidAmount:    decimal.Zero,
		MarginPercent: decimal.NewFromInt(15),
		Status:        string(domsale.StatusActive),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SaleBuilder) BuildDomain() (*domsale.Sale, error) {
	occupancy, err := domsale.NewOccupancy(b.Adults, b.Children, roomType(b.RoomType))
	if err != nil {
		return nil, err
	}
	margin, err := domsale.NewMarginPercent(b.MarginPercent)
	if err != nil {
		return nil, err
	}
	return domsale.NewSale(domsale.Kind(b.Kind), b.SellerID, occupancy, b.PoolID, moneyOf(b.TotalPrice), margin)
}

func (b *SaleBuilder) BuildCreateRequestDTO() reqdto.CreateSaleRequest {
	req := reqdto.CreateSaleRequest{
		Kind:           b.Kind,
		PoolID:         b.PoolID,
		Adults:         b.Adults,
		Children:       b.Children,
		RoomType:       b.RoomType,
		MarginPercent:  b.MarginPercent,
		InitialPayment: b.InitialPayment,
	}
	if b.Kind == string(domsale.KindGeneral) {
		total := b.TotalPrice
		req.TotalPrice = &total
	}
	return req
}

func (b *SaleBuilder) BuildView() *queries.SaleView {
	id := uuid.New()
	return &queries.SaleView{
		ID:            id,
		Kind:          b.Kind,
		PoolID:        b.PoolID,
		SellerID:      b.SellerID,
		Adults:        int32(b.Adults),
		Children:      int32(b.Children),
		RoomType:      b.RoomType,
		Currency:      b.Currency,
		TotalPrice:    b.TotalPrice,
		PaidAmount:    b.PaidAmount,
		Balance:       b.TotalPrice.Sub(b.PaidAmount),
		MarginPercent: b.MarginPercent,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *SaleBuilder) BuildListItem() *queries.SaleListItem {
	return &queries.SaleListItem{
		ID:         uuid.New(),
		Kind:       b.Kind,
		Currency:   b.Currency,
		TotalPrice: b.TotalPrice,
		Balance:    b.TotalPrice.Sub(b.PaidAmount),
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *SaleBuilder) BuildSnapshot() *shared.SaleSnapshot {
	return &shared.SaleSnapshot{
		ID:       uuid.New(),
		SellerID: b.SellerID,
		Kind:     domsale.Kind(b.Kind),
		Currency: b.Currency,
		Status:   domsale.Status(b.Status),
	}
}

// Fluent builder methods
func (b *SaleBuilder) WithSellerID(sellerID uuid.UUID) *SaleBuilder {
	b.SellerID = sellerID
	return b
}

func (b *SaleBuilder) WithKind(kind string) *SaleBuilder {
	b.Kind = kind
	return b
}

func (b *SaleBuilder) WithPoolID(poolID uuid.UUID) *SaleBuilder {
	b.PoolID = &poolID
	return b
}

func (b *SaleBuilder) WithOccupancy(adults, children int, roomType string) *SaleBuilder {
	b.Adults = adults
	b.Children = children
	b.RoomType = roomType
	return b
}

func (b *SaleBuilder) WithCurrency(currency string) *SaleBuilder {
	b.Currency = currency
	return b
}

func (b *SaleBuilder) WithTotalPrice(total string) *SaleBuilder {
	b.TotalPrice = decimal.RequireFromString(total)
	return b
}

func (b *SaleBuilder) WithPaidAmount(paid string) *SaleBuilder {
	b.PaidAmount = decimal.RequireFromString(paid)
	return b
}

func (b *SaleBuilder) WithMarginPercent(margin string) *SaleBuilder {
	b.MarginPercent = decimal.RequireFromString(margin)
	return b
}

func (b *SaleBuilder) WithStatus(status string) *SaleBuilder {
	b.Status = status
	return b
}

func (b *SaleBuilder) WithInitialPayment(req reqdto.PaymentRequest) *SaleBuilder {
	b.InitialPayment = &req
	return b
}
