package request

import (
	"viajes-backoffice/internal/usecase/commands"

	"github.com/google/uuid"
)

type SettleCommissionsRequest struct {
	SaleIDs []uuid.UUID `json:"sale_ids" binding:"required,min=1"`
	Method  string      `json:"method" binding:"required"`
	Note    string      `json:"note"`
}

func (r SettleCommissionsRequest) ToParams(sellerID uuid.UUID) commands.SettleCommissionsParams {
	return commands.SettleCommissionsParams{
		SellerID: sellerID,
		SaleIDs:  r.SaleIDs,
		Method:   r.Method,
		Note:     r.Note,
	}
}
