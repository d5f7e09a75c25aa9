//go:build unit || e2e

package builder

import (
	"time"

	dominventory "viajes-backoffice/internal/domain/inventory"
	reqdto "viajes-backoffice/internal/handler/dto/request"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PoolRate struct {
	RoomType string
	Adult    string
	Child    string
}

type PoolBuilder struct {
	Name      string
	Kind      string
	Capacity  int
	Committed int
	Rates     []PoolRate
	StartDate time.Time
	EndDate   time.Time
	Nights    int
	Status    string
}

func NewPoolBuilder() *PoolBuilder {
	start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	return &PoolBuilder{
		Name:     "Cancun Block",
		Kind:     string(dominventory.KindBlock),
		Capacity: 10,
		Rates: []PoolRate{
			{RoomType: "double", Adult: "500.00", Child: "250.00"},
			{RoomType: "triple", Adult: "450.00", Child: "225.00"},
		},
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
		Nights:    3,
		Status:    string(dominventory.StatusActive),
	}
}

func (b *PoolBuilder) With(mutate func(*PoolBuilder)) *PoolBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PoolBuilder) BuildDomain() (*dominventory.Pool, error) {
	tariff, err := b.BuildTariff()
	if err != nil {
		return nil, err
	}
	window, err := dominventory.NewDateRange(b.StartDate, b.EndDate, b.Nights)
	if err != nil {
		return nil, err
	}
	return dominventory.NewPool(b.Name, dominventory.Kind(b.Kind), b.Capacity, tariff, window)
}

func (b *PoolBuilder) BuildTariff() (dominventory.Tariff, error) {
	return dominventory.NewTariff(b.tariffRates())
}

func (b *PoolBuilder) BuildCreateRequestDTO() reqdto.CreatePoolRequest {
	rates := make([]reqdto.PoolRateRequest, 0, len(b.Rates))
	for _, r := range b.Rates {
		rates = append(rates, reqdto.PoolRateRequest{
			RoomType: r.RoomType,
			Adult:    decimal.RequireFromString(r.Adult),
			Child:    decimal.RequireFromString(r.Child),
		})
	}
	return reqdto.CreatePoolRequest{
		Name:      b.Name,
		Kind:      b.Kind,
		Capacity:  b.Capacity,
		Rates:     rates,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Nights:    b.Nights,
	}
}

func (b *PoolBuilder) BuildView() *queries.PoolView {
	rates := make([]queries.PoolRateView, 0, len(b.Rates))
	for _, r := range b.Rates {
		rates = append(rates, queries.PoolRateView{
			RoomType:  r.RoomType,
			AdultRate: decimal.RequireFromString(r.Adult),
			ChildRate: decimal.RequireFromString(r.Child),
		})
	}
	return &queries.PoolView{
		ID:        uuid.New(),
		Name:      b.Name,
		Kind:      b.Kind,
		Capacity:  int32(b.Capacity),
		Committed: int32(b.Committed),
		Available: int32(b.Capacity - b.Committed),
		Rates:     rates,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Nights:    int32(b.Nights),
		Status:    b.Status,
		CreatedAt: time.Now(),
	}
}

func (b *PoolBuilder) BuildSnapshot() *shared.PoolSnapshot {
	return &shared.PoolSnapshot{
		ID:        uuid.New(),
		Name:      b.Name,
		Kind:      dominventory.Kind(b.Kind),
		Capacity:  b.Capacity,
		Committed: b.Committed,
		Rates:     b.tariffRates(),
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Nights:    b.Nights,
		Status:    dominventory.Status(b.Status),
	}
}

func (b *PoolBuilder) tariffRates() []dominventory.TariffRate {
	rates := make([]dominventory.TariffRate, 0, len(b.Rates))
	for _, r := range b.Rates {
		rates = append(rates, dominventory.TariffRate{
			RoomType: roomType(r.RoomType),
			Adult:    moneyOf(decimal.RequireFromString(r.Adult)),
			Child:    moneyOf(decimal.RequireFromString(r.Child)),
		})
	}
	return rates
}

// Fluent builder methods
func (b *PoolBuilder) WithName(name string) *PoolBuilder {
	b.Name = name
	return b
}

func (b *PoolBuilder) WithKind(kind string) *PoolBuilder {
	b.Kind = kind
	return b
}

func (b *PoolBuilder) WithCapacity(capacity int) *PoolBuilder {
	b.Capacity = capacity
	return b
}

func (b *PoolBuilder) WithCommitted(committed int) *PoolBuilder {
	b.Committed = committed
	return b
}

func (b *PoolBuilder) WithRates(rates ...PoolRate) *PoolBuilder {
	b.Rates = rates
	return b
}

func (b *PoolBuilder) WithWindow(start, end time.Time, nights int) *PoolBuilder {
	b.StartDate = start
	b.EndDate = end
	b.Nights = nights
	return b
}

func (b *PoolBuilder) WithStatus(status string) *PoolBuilder {
	b.Status = status
	return b
}
