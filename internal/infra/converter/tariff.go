package converter

import (
	"encoding/json"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// TariffRateJSON is the jsonb shape of one room-type rate inside a pool row.
type TariffRateJSON struct {
	RoomType string          `json:"room_type"`
	Adult    decimal.Decimal `json:"adult"`
	Child    decimal.Decimal `json:"child"`
}

func TariffToJSON(t inventory.Tariff) ([]byte, error) {
	rates := t.Rates()
	out := make([]TariffRateJSON, 0, len(rates))
	for _, r := range rates {
		out = append(out, TariffRateJSON{
			RoomType: string(r.RoomType),
			Adult:    r.Adult.Decimal(),
			Child:    r.Child.Decimal(),
		})
	}
	return json.Marshal(out)
}

func TariffRatesFromJSON(data []byte) ([]inventory.TariffRate, error) {
	var rows []TariffRateJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	rates := make([]inventory.TariffRate, 0, len(rows))
	for _, r := range rows {
		rates = append(rates, inventory.TariffRate{
			RoomType: inventory.RoomType(r.RoomType),
			Adult:    money.New(r.Adult),
			Child:    money.New(r.Child),
		})
	}
	return rates, nil
}

func RateViewsFromJSON(data []byte) ([]queries.PoolRateView, error) {
	var rows []TariffRateJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	views := make([]queries.PoolRateView, 0, len(rows))
	for _, r := range rows {
		views = append(views, queries.PoolRateView{
			RoomType:  r.RoomType,
			AdultRate: r.Adult,
			ChildRate: r.Child,
		})
	}
	return views, nil
}
