package request

import (
	"time"

	"viajes-backoffice/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type PoolRateRequest struct {
	RoomType string          `json:"room_type" binding:"required"`
	Adult    decimal.Decimal `json:"adult" binding:"required"`
	Child    decimal.Decimal `json:"child"`
}

type CreatePoolRequest struct {
	Name      string            `json:"name" binding:"required"`
	Kind      string            `json:"kind" binding:"required"`
	Capacity  int               `json:"capacity" binding:"required"`
	Rates     []PoolRateRequest `json:"rates" binding:"required"`
	StartDate time.Time         `json:"start_date" binding:"required"`
	EndDate   time.Time         `json:"end_date" binding:"required"`
	Nights    int               `json:"nights" binding:"required"`
}

func (r CreatePoolRequest) ToParams() commands.CreatePoolParams {
	rates := make([]commands.PoolRateInput, 0, len(r.Rates))
	for _, rate := range r.Rates {
		rates = append(rates, commands.PoolRateInput{
			RoomType: rate.RoomType,
			Adult:    rate.Adult,
			Child:    rate.Child,
		})
	}
	return commands.CreatePoolParams{
		Name:      r.Name,
		Kind:      r.Kind,
		Capacity:  r.Capacity,
		Rates:     rates,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Nights:    r.Nights,
	}
}
