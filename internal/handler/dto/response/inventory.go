package response

import (
	"time"

	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PoolRateResponse struct {
	RoomType  string          `json:"roomType"`
	AdultRate decimal.Decimal `json:"adultRate"`
	ChildRate decimal.Decimal `json:"childRate"`
}

type PoolResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Kind      string             `json:"kind"`
	Capacity  int32              `json:"capacity"`
	Committed int32              `json:"committed"`
	Available int32              `json:"available"`
	Rates     []PoolRateResponse `json:"rates"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Nights    int32              `json:"nights"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

func FromPoolView(rm *queries.PoolView) *PoolResponse {
	rates := make([]PoolRateResponse, 0, len(rm.Rates))
	for _, r := range rm.Rates {
		rates = append(rates, PoolRateResponse{
			RoomType:  r.RoomType,
			AdultRate: r.AdultRate,
			ChildRate: r.ChildRate,
		})
	}
	return &PoolResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Kind:      rm.Kind,
		Capacity:  rm.Capacity,
		Committed: rm.Committed,
		Available: rm.Available,
		Rates:     rates,
		StartDate: rm.StartDate,
		EndDate:   rm.EndDate,
		Nights:    rm.Nights,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}
