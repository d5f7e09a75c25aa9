package commission

import (
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// Policy maps a sale segment to its vendor rate. Rates come from
// configuration and may be edited between deploys; a sale that already
// settled keeps the commission frozen on its row regardless.
type Policy struct {
	general       decimal.Decimal
	national      decimal.Decimal
	international decimal.Decimal
}

func NewPolicy(cfg config.CommissionConfig) *Policy {
	return &Policy{
		general:       decimal.NewFromFloat(cfg.GeneralRatePercent),
		national:      decimal.NewFromFloat(cfg.NationalRatePercent),
		international: decimal.NewFromFloat(cfg.InternationalRatePercent),
	}
}

var hundred = decimal.NewFromInt(100)

// VendorRate implements sale.CommissionPolicy, returning a fraction.
func (p *Policy) VendorRate(segment sale.Segment) decimal.Decimal {
	switch segment {
	case sale.SegmentNational:
		return p.national.Div(hundred)
	case sale.SegmentInternational:
		return p.international.Div(hundred)
	default:
		return p.general.Div(hundred)
	}
}
