package sale

import "viajes-backoffice/internal/domain/money"

// Kind is the sale's origin: a direct sale, a sale against a pre-purchased
// room block or group allocation, or a national/international trip seat.
type Kind string

const (
	KindGeneral           Kind = "general"
	KindBlockBacked       Kind = "block_backed"
	KindGroupBacked       Kind = "group_backed"
	KindNationalTrip      Kind = "national_trip"
	KindInternationalTrip Kind = "international_trip"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindGeneral, KindBlockBacked, KindGroupBacked, KindNationalTrip, KindInternationalTrip:
		return true
	default:
		return false
	}
}

// BaseCurrency is fixed per sale kind: international trips are quoted in
// dollars, everything else in pesos.
func (k Kind) BaseCurrency() money.Currency {
	if k == KindInternationalTrip {
		return money.USD
	}
	return money.MXN
}

// Segment groups kinds for commission configuration.
type Segment string

const (
	SegmentGeneral       Segment = "general"
	SegmentNational      Segment = "national"
	SegmentInternational Segment = "international"
)

func (k Kind) Segment() Segment {
	switch k {
	case KindNationalTrip:
		return SegmentNational
	case KindInternationalTrip:
		return SegmentInternational
	default:
		return SegmentGeneral
	}
}

type Status string

const (
	StatusActive  Status = "active"
	StatusSettled Status = "settled"
	StatusClosed  Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSettled, StatusClosed:
		return true
	default:
		return false
	}
}
