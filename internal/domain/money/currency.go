package money

import "errors"

var ErrUnknownCurrency = errors.New("unknown currency")

type Currency string

const (
	MXN Currency = "MXN"
	USD Currency = "USD"
)

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case MXN:
		return MXN, nil
	case USD:
		return USD, nil
	default:
		return "", ErrUnknownCurrency
	}
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	switch c {
	case MXN, USD:
		return true
	default:
		return false
	}
}
