package inventory

import (
	"errors"
	"time"

	"viajes-backoffice/internal/domain/money"
)

var (
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidNights    = errors.New("nights must be positive")
	ErrInvalidRoomType  = errors.New("invalid room type")
	ErrNegativeRate     = errors.New("tariff rate cannot be negative")
)

type RoomType string

const (
	RoomDouble    RoomType = "double"
	RoomTriple    RoomType = "triple"
	RoomQuadruple RoomType = "quadruple"
)

func (rt RoomType) IsValid() bool {
	switch rt {
	case RoomDouble, RoomTriple, RoomQuadruple:
		return true
	default:
		return false
	}
}

// AdultCapacity is the number of adults the room type is configured for.
func (rt RoomType) AdultCapacity() int {
	switch rt {
	case RoomDouble:
		return 2
	case RoomTriple:
		return 3
	case RoomQuadruple:
		return 4
	default:
		return 0
	}
}

// Tariff holds the nightly (or per-seat) rate per occupant, split by
// adult/child and room type.
type Tariff struct {
	rates map[RoomType]occupantRates
}

type occupantRates struct {
	adult money.Money
	child money.Money
}

type TariffRate struct {
	RoomType RoomType
	Adult    money.Money
	Child    money.Money
}

func NewTariff(rates []TariffRate) (Tariff, error) {
	byType := make(map[RoomType]occupantRates, len(rates))
	for _, r := range rates {
		if !r.RoomType.IsValid() {
			return Tariff{}, ErrInvalidRoomType
		}
		if r.Adult.IsNegative() || r.Child.IsNegative() {
			return Tariff{}, ErrNegativeRate
		}
		byType[r.RoomType] = occupantRates{adult: r.Adult, child: r.Child}
	}
	return Tariff{rates: byType}, nil
}

func (t Tariff) AdultRate(rt RoomType) (money.Money, bool) {
	r, ok := t.rates[rt]
	return r.adult, ok
}

func (t Tariff) ChildRate(rt RoomType) (money.Money, bool) {
	r, ok := t.rates[rt]
	return r.child, ok
}

func (t Tariff) Rates() []TariffRate {
	out := make([]TariffRate, 0, len(t.rates))
	for _, rt := range []RoomType{RoomDouble, RoomTriple, RoomQuadruple} {
		if r, ok := t.rates[rt]; ok {
			out = append(out, TariffRate{RoomType: rt, Adult: r.adult, Child: r.child})
		}
	}
	return out
}

// DateRange is the validity window of a pool: the block or trip runs from
// start to end and is sold in stays of the given number of nights.
type DateRange struct {
	start  time.Time
	end    time.Time
	nights int
}

func NewDateRange(start, end time.Time, nights int) (DateRange, error) {
	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	if nights <= 0 {
		return DateRange{}, ErrInvalidNights
	}
	return DateRange{start: start, end: end, nights: nights}, nil
}

func (d DateRange) Start() time.Time { return d.start }
func (d DateRange) End() time.Time   { return d.end }
func (d DateRange) Nights() int      { return d.nights }

func (d DateRange) Overlaps(from, to time.Time) bool {
	return d.start.Before(to) && from.Before(d.end)
}
