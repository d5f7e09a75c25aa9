//go:build unit || e2e

package builder

import (
	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"

	"github.com/shopspring/decimal"
)

func moneyOf(d decimal.Decimal) money.Money {
	return money.New(d)
}

func roomType(s string) inventory.RoomType {
	return inventory.RoomType(s)
}

func currency(s string) money.Currency {
	return money.Currency(s)
}
