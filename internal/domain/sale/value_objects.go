package sale

import (
	"errors"
	"fmt"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAdults    = errors.New("adults must be between 1 and the room capacity")
	ErrTooManyChildren  = errors.New("children exceed the allowance for this occupancy")
	ErrNegativeChildren = errors.New("children cannot be negative")
	ErrInvalidMargin    = errors.New("margin percent must be between 0 and 100")
	ErrTariffMissing    = errors.New("tariff has no rate for this room type")
)

// Occupancy is who travels in one unit. The child allowance follows the
// adult count: two adults admit up to two children, three admit one, four
// admit none. Violations are rejected here, never clamped.
type Occupancy struct {
	adults   int
	children int
	roomType inventory.RoomType
}

func NewOccupancy(adults, children int, roomType inventory.RoomType) (Occupancy, error) {
	if !roomType.IsValid() {
		return Occupancy{}, inventory.ErrInvalidRoomType
	}
	if adults < 1 || adults > roomType.AdultCapacity() {
		return Occupancy{}, ErrInvalidAdults
	}
	if children < 0 {
		return Occupancy{}, ErrNegativeChildren
	}
	if children > childAllowance(adults) {
		return Occupancy{}, ErrTooManyChildren
	}
	return Occupancy{adults: adults, children: children, roomType: roomType}, nil
}

func childAllowance(adults int) int {
	switch adults {
	case 3:
		return 1
	case 4:
		return 0
	default:
		return 2
	}
}

func (o Occupancy) Adults() int                  { return o.adults }
func (o Occupancy) Children() int                { return o.children }
func (o Occupancy) RoomType() inventory.RoomType { return o.roomType }

func (o Occupancy) String() string {
	return fmt.Sprintf("%da+%dc/%s", o.adults, o.children, o.roomType)
}

// PriceFromTariff computes the sale total for a pool-backed sale:
// (adults x adult rate + children x child rate) x nights.
func (o Occupancy) PriceFromTariff(t inventory.Tariff, nights int) (money.Money, error) {
	adultRate, ok := t.AdultRate(o.roomType)
	if !ok {
		return money.Money{}, ErrTariffMissing
	}
	childRate, _ := t.ChildRate(o.roomType)

	perNight := adultRate.Mul(decimal.NewFromInt(int64(o.adults))).
		Add(childRate.Mul(decimal.NewFromInt(int64(o.children))))
	return perNight.Mul(decimal.NewFromInt(int64(nights))), nil
}

// MarginPercent is the agency's margin on a sale, 0-100.
type MarginPercent struct {
	value decimal.Decimal
}

func NewMarginPercent(d decimal.Decimal) (MarginPercent, error) {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return MarginPercent{}, ErrInvalidMargin
	}
	return MarginPercent{value: d}, nil
}

func (m MarginPercent) Decimal() decimal.Decimal { return m.value }

// Fraction returns the margin as a multiplier (15% -> 0.15).
func (m MarginPercent) Fraction() decimal.Decimal {
	return m.value.Div(decimal.NewFromInt(100))
}

func (m MarginPercent) String() string {
	return m.value.String() + "%"
}
