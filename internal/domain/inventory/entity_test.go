//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		pool, err := builder.NewPoolBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, pool.ID())
		assert.Equal(t, inventory.KindBlock, pool.Kind())
		assert.Equal(t, 10, pool.Capacity())
		assert.Equal(t, 0, pool.Committed())
		assert.Equal(t, 10, pool.Available())
		assert.Equal(t, inventory.StatusActive, pool.Status())
		assert.True(t, pool.IsSellable())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := builder.NewPoolBuilder().WithCapacity(0).BuildDomain()
		require.ErrorIs(t, err, inventory.ErrInvalidCapacity)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := builder.NewPoolBuilder().WithKind("charter").BuildDomain()
		require.Error(t, err)
	})
}

func TestReconstructPool(t *testing.T) {
	t.Run("rejects committed above capacity", func(t *testing.T) {
		_, err := reconstructPool(t, 10, 11, inventory.StatusActive)
		require.ErrorIs(t, err, inventory.ErrInvalidCommitted)
	})

	t.Run("rejects negative committed", func(t *testing.T) {
		_, err := reconstructPool(t, 10, -1, inventory.StatusActive)
		require.ErrorIs(t, err, inventory.ErrInvalidCommitted)
	})
}

func TestReserve(t *testing.T) {
	t.Run("commits one unit per call", func(t *testing.T) {
		pool, err := builder.NewPoolBuilder().WithCapacity(3).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, pool.Reserve())
		assert.Equal(t, 1, pool.Committed())
		assert.Equal(t, 2, pool.Available())
		assert.Equal(t, inventory.StatusActive, pool.Status())
	})

	t.Run("last unit flips the pool to exhausted", func(t *testing.T) {
		pool, err := builder.NewPoolBuilder().WithCapacity(2).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, pool.Reserve())
		require.NoError(t, pool.Reserve())

		assert.Equal(t, 0, pool.Available())
		assert.Equal(t, inventory.StatusExhausted, pool.Status())
		assert.False(t, pool.IsSellable())
	})

	t.Run("exhausted pool rejects a further reserve", func(t *testing.T) {
		pool, err := builder.NewPoolBuilder().WithCapacity(1).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, pool.Reserve())
		require.ErrorIs(t, pool.Reserve(), inventory.ErrPoolExhausted)
		assert.Equal(t, 1, pool.Committed())
	})

	t.Run("closed pool rejects reserves even with units left", func(t *testing.T) {
		pool, err := reconstructPool(t, 10, 2, inventory.StatusClosed)
		require.NoError(t, err)

		require.ErrorIs(t, pool.Reserve(), inventory.ErrPoolClosed)
		assert.Equal(t, 2, pool.Committed())
	})
}

func TestTariff(t *testing.T) {
	t.Run("rejects unknown room type", func(t *testing.T) {
		_, err := inventory.NewTariff([]inventory.TariffRate{
			{RoomType: "suite", Adult: money.Zero(), Child: money.Zero()},
		})
		require.ErrorIs(t, err, inventory.ErrInvalidRoomType)
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		negative := money.New(decimal.RequireFromString("-1.00"))
		_, err := inventory.NewTariff([]inventory.TariffRate{
			{RoomType: inventory.RoomDouble, Adult: negative, Child: money.Zero()},
		})
		require.ErrorIs(t, err, inventory.ErrNegativeRate)
	})

	t.Run("zero rates are allowed", func(t *testing.T) {
		tariff, err := inventory.NewTariff([]inventory.TariffRate{
			{RoomType: inventory.RoomDouble, Adult: money.Zero(), Child: money.Zero()},
		})
		require.NoError(t, err)

		rate, ok := tariff.AdultRate(inventory.RoomDouble)
		require.True(t, ok)
		assert.True(t, rate.IsZero())
	})

	t.Run("lookup misses for an absent room type", func(t *testing.T) {
		tariff, err := builder.NewPoolBuilder().
			WithRates(builder.PoolRate{RoomType: "double", Adult: "500.00", Child: "250.00"}).
			BuildTariff()
		require.NoError(t, err)

		_, ok := tariff.AdultRate(inventory.RoomQuadruple)
		assert.False(t, ok)
	})

	t.Run("rates come back in room type order", func(t *testing.T) {
		tariff, err := inventory.NewTariff([]inventory.TariffRate{
			{RoomType: inventory.RoomQuadruple, Adult: money.Zero(), Child: money.Zero()},
			{RoomType: inventory.RoomDouble, Adult: money.Zero(), Child: money.Zero()},
		})
		require.NoError(t, err)

		rates := tariff.Rates()
		require.Len(t, rates, 2)
		assert.Equal(t, inventory.RoomDouble, rates[0].RoomType)
		assert.Equal(t, inventory.RoomQuadruple, rates[1].RoomType)
	})
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	t.Run("start must precede end", func(t *testing.T) {
		_, err := inventory.NewDateRange(end, start, 3)
		require.ErrorIs(t, err, inventory.ErrInvalidDateRange)

		_, err = inventory.NewDateRange(start, start, 3)
		require.ErrorIs(t, err, inventory.ErrInvalidDateRange)
	})

	t.Run("nights must be positive", func(t *testing.T) {
		_, err := inventory.NewDateRange(start, end, 0)
		require.ErrorIs(t, err, inventory.ErrInvalidNights)
	})

	t.Run("overlap is half-open on both sides", func(t *testing.T) {
		window, err := inventory.NewDateRange(start, end, 3)
		require.NoError(t, err)

		assert.True(t, window.Overlaps(start.AddDate(0, 0, 2), start.AddDate(0, 0, 5)))
		assert.True(t, window.Overlaps(start.AddDate(0, 0, -2), start.AddDate(0, 0, 2)))
		assert.False(t, window.Overlaps(end, end.AddDate(0, 0, 3)))
		assert.False(t, window.Overlaps(start.AddDate(0, 0, -3), start))
	})
}

func reconstructPool(t *testing.T, capacity, committed int, status inventory.Status) (*inventory.Pool, error) {
	t.Helper()

	b := builder.NewPoolBuilder()
	tariff, err := b.BuildTariff()
	require.NoError(t, err)
	window, err := inventory.NewDateRange(b.StartDate, b.EndDate, b.Nights)
	require.NoError(t, err)

	now := time.Now()
	return inventory.ReconstructPool(
		uuid.New(), b.Name, inventory.Kind(b.Kind),
		capacity, committed, tariff, window, status, now, now,
	)
}
