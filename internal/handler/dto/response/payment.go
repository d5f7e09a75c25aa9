package response

import (
	"time"

	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID           uuid.UUID       `json:"id"`
	SaleID       uuid.UUID       `json:"saleId"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Rate         decimal.Decimal `json:"rate"`
	RateSource   *string         `json:"rateSource,omitempty"`
	AmountInBase decimal.Decimal `json:"amountInBase"`
	Method       string          `json:"method"`
	ReceivedAt   time.Time       `json:"receivedAt"`
}

type RecordPaymentResponse struct {
	PaymentID uuid.UUID       `json:"paymentId"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
	Replayed  bool            `json:"replayed"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:           rm.ID,
		SaleID:       rm.SaleID,
		Amount:       rm.Amount,
		Currency:     rm.Currency,
		Rate:         rm.Rate,
		RateSource:   rm.RateSource,
		AmountInBase: rm.AmountInBase,
		Method:       rm.Method,
		ReceivedAt:   rm.ReceivedAt,
	}
}

func FromRecordPaymentResult(result *commands.RecordPaymentResult) *RecordPaymentResponse {
	return &RecordPaymentResponse{
		PaymentID: result.PaymentID,
		Balance:   result.Balance.Decimal(),
		Status:    string(result.Status),
		Replayed:  result.IsReplayed,
	}
}
