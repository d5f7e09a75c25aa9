package request

import (
	"viajes-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Currency   string           `json:"currency" binding:"required"`
	Method     string           `json:"method" binding:"required"`
	ManualRate *decimal.Decimal `json:"manual_rate,omitempty"`
}

type CreateSaleRequest struct {
	Kind           string           `json:"kind" binding:"required"`
	PoolID         *uuid.UUID       `json:"pool_id,omitempty"`
	Adults         int              `json:"adults" binding:"required"`
	Children       int              `json:"children"`
	RoomType       string           `json:"room_type" binding:"required"`
	TotalPrice     *decimal.Decimal `json:"total_price,omitempty"`
	MarginPercent  decimal.Decimal  `json:"margin_percent"`
	InitialPayment *PaymentRequest  `json:"initial_payment,omitempty"`
}

func (r CreateSaleRequest) ToParams() commands.CreateSaleParams {
	params := commands.CreateSaleParams{
		Kind:          r.Kind,
		PoolID:        r.PoolID,
		Adults:        r.Adults,
		Children:      r.Children,
		RoomType:      r.RoomType,
		TotalPrice:    r.TotalPrice,
		MarginPercent: r.MarginPercent,
	}
	if r.InitialPayment != nil {
		params.InitialPayment = &commands.PaymentInput{
			Amount:     r.InitialPayment.Amount,
			Currency:   r.InitialPayment.Currency,
			Method:     r.InitialPayment.Method,
			ManualRate: r.InitialPayment.ManualRate,
		}
	}
	return params
}

func (r PaymentRequest) ToParams(saleID uuid.UUID) commands.RecordPaymentParams {
	return commands.RecordPaymentParams{
		SaleID: saleID,
		PaymentInput: commands.PaymentInput{
			Amount:     r.Amount,
			Currency:   r.Currency,
			Method:     r.Method,
			ManualRate: r.ManualRate,
		},
	}
}
