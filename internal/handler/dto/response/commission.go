package response

import (
	"time"

	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionEntryResponse struct {
	ID       uuid.UUID       `json:"id"`
	SellerID uuid.UUID       `json:"sellerId"`
	SaleID   uuid.UUID       `json:"saleId"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	PaidAt   time.Time       `json:"paidAt"`
	Note     *string         `json:"note,omitempty"`
}

type SettleCommissionsResponse struct {
	EntryIDs    []uuid.UUID `json:"entryIds"`
	SalesClosed int         `json:"salesClosed"`
}

func FromCommissionEntryView(rm *queries.CommissionEntryView) *CommissionEntryResponse {
	return &CommissionEntryResponse{
		ID:       rm.ID,
		SellerID: rm.SellerID,
		SaleID:   rm.SaleID,
		Amount:   rm.Amount,
		Method:   rm.Method,
		PaidAt:   rm.PaidAt,
		Note:     rm.Note,
	}
}

func FromSettleCommissionsResult(result *commands.SettleCommissionsResult) *SettleCommissionsResponse {
	return &SettleCommissionsResponse{
		EntryIDs:    result.EntryIDs,
		SalesClosed: result.SalesClosed,
	}
}
