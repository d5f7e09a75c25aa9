package response

import (
	"time"

	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleResponse struct {
	ID               uuid.UUID       `json:"id"`
	Kind             string          `json:"kind"`
	PoolID           *uuid.UUID      `json:"poolId,omitempty"`
	PoolName         *string         `json:"poolName,omitempty"`
	SellerID         uuid.UUID       `json:"sellerId"`
	Adults           int32           `json:"adults"`
	Children         int32           `json:"children"`
	RoomType         string          `json:"roomType"`
	Currency         string          `json:"currency"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	PaidAmount       decimal.Decimal `json:"paidAmount"`
	Balance          decimal.Decimal `json:"balance"`
	MarginPercent    decimal.Decimal `json:"marginPercent"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	CommissionPaid   bool            `json:"commissionPaid"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type SaleListItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	Kind       string          `json:"kind"`
	Currency   string          `json:"currency"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type SaleListResponse struct {
	Items      []*SaleListItemResponse `json:"items"`
	NextCursor *string                 `json:"nextCursor,omitempty"`
}

func FromSaleView(rm *queries.SaleView) *SaleResponse {
	return &SaleResponse{
		ID:               rm.ID,
		Kind:             rm.Kind,
		PoolID:           rm.PoolID,
		PoolName:         rm.PoolName,
		SellerID:         rm.SellerID,
		Adults:           rm.Adults,
		Children:         rm.Children,
		RoomType:         rm.RoomType,
		Currency:         rm.Currency,
		TotalPrice:       rm.TotalPrice,
		PaidAmount:       rm.PaidAmount,
		Balance:          rm.Balance,
		MarginPercent:    rm.MarginPercent,
		CommissionAmount: rm.CommissionAmount,
		CommissionPaid:   rm.CommissionPaid,
		Status:           rm.Status,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromSaleListItem(rm *queries.SaleListItem) *SaleListItemResponse {
	return &SaleListItemResponse{
		ID:         rm.ID,
		Kind:       rm.Kind,
		Currency:   rm.Currency,
		TotalPrice: rm.TotalPrice,
		Balance:    rm.Balance,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}

type CreateSaleResponse struct {
	Sale     *SaleResponse `json:"sale"`
	Replayed bool          `json:"replayed"`
}

func FromCreateSaleResult(result *commands.CreateSaleResult) *CreateSaleResponse {
	return &CreateSaleResponse{
		Sale:     FromSaleView(result.Sale),
		Replayed: result.IsReplayed,
	}
}
