//go:build unit

package commission_test

import (
	"testing"
	"time"

	"viajes-backoffice/internal/domain/commission"
	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntry(t *testing.T) {
	sellerID, saleID := uuid.New(), uuid.New()
	amount := money.New(decimal.RequireFromString("15.00"))

	t.Run("basic success case", func(t *testing.T) {
		entry, err := commission.NewLedgerEntry(sellerID, saleID, amount, commission.PayoutTransfer, time.Now(), "july batch")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, entry.ID())
		assert.Equal(t, sellerID, entry.SellerID())
		assert.Equal(t, saleID, entry.SaleID())
		assert.Equal(t, "15.00", entry.Amount().String())
		assert.Equal(t, commission.PayoutTransfer, entry.Method())
		assert.Equal(t, "july batch", entry.Note())
	})

	t.Run("zero amount is a valid payout", func(t *testing.T) {
		// A sale with 0% margin still closes through the ledger.
		_, err := commission.NewLedgerEntry(sellerID, saleID, money.Zero(), commission.PayoutCash, time.Now(), "")
		require.NoError(t, err)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		negative := money.New(decimal.RequireFromString("-0.01"))
		_, err := commission.NewLedgerEntry(sellerID, saleID, negative, commission.PayoutCash, time.Now(), "")
		require.ErrorIs(t, err, commission.ErrNegativeAmount)
	})

	t.Run("unknown payout method is rejected", func(t *testing.T) {
		_, err := commission.NewLedgerEntry(sellerID, saleID, amount, "voucher", time.Now(), "")
		require.ErrorIs(t, err, commission.ErrInvalidMethod)
	})
}

func TestPolicyVendorRate(t *testing.T) {
	policy := commission.NewPolicy(config.CommissionConfig{
		GeneralRatePercent:       10,
		NationalRatePercent:      5,
		InternationalRatePercent: 8,
	})

	cases := []struct {
		segment sale.Segment
		want    string
	}{
		{segment: sale.SegmentGeneral, want: "0.1"},
		{segment: sale.SegmentNational, want: "0.05"},
		{segment: sale.SegmentInternational, want: "0.08"},
	}
	for _, c := range cases {
		t.Run(string(c.segment), func(t *testing.T) {
			assert.True(t, policy.VendorRate(c.segment).Equal(decimal.RequireFromString(c.want)))
		})
	}
}
