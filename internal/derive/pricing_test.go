package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"Date-only range", "2024-03-01", "2024-03-13", 12},
		{"Full timestamps", "2024-03-01T10:00:00Z", "2024-03-04T10:00:00Z", 3},
		{"Partial day rounds up", "2024-03-01T10:00:00Z", "2024-03-04T18:00:00Z", 4},
		{"Same instant", "2024-03-01", "2024-03-01", 0},
		{"Inverted range", "2024-03-10", "2024-03-01", 0},
		{"Unparseable start", "not-a-date", "2024-03-10", 0},
		{"Empty end", "2024-03-01", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RentalDays(tt.start, tt.end))
		})
	}
}

func TestPriceRental(t *testing.T) {
	rates := RateTable{Daily: 1000, TenDay: 9000, Monthly: 24000}

	t.Run("Daily tier", func(t *testing.T) {
		q := PriceRental(rates, "2024-03-01", "2024-03-04", PriceOptions{Tiers: StandardTiers})
		assert.Equal(t, 3, q.Days)
		assert.Equal(t, 1000.0, q.DailyRate)
		assert.Equal(t, 3000.0, q.Total)
		assert.Len(t, q.Breakdown, 1)
		assert.Contains(t, q.Breakdown[0].Label, "3 days")
	})

	t.Run("Ten-day tier at 12 days", func(t *testing.T) {
		// 9000 / 10 = 900 effective daily rate.
		q := PriceRental(rates, "2024-03-01", "2024-03-13", PriceOptions{Tiers: StandardTiers})
		assert.Equal(t, 12, q.Days)
		assert.Equal(t, 900.0, q.DailyRate)
		assert.Equal(t, 10800.0, q.Total)
	})

	t.Run("Monthly tier at 30 days", func(t *testing.T) {
		q := PriceRental(rates, "2024-03-01", "2024-03-31", PriceOptions{Tiers: StandardTiers})
		assert.Equal(t, 30, q.Days)
		assert.Equal(t, 800.0, q.DailyRate)
		assert.Equal(t, 24000.0, q.Total)
	})

	t.Run("Counter preset opens monthly at 20 days with surcharge", func(t *testing.T) {
		q := PriceRental(rates, "2024-03-01", "2024-03-21", PriceOptions{Tiers: CounterTiers})
		assert.Equal(t, 20, q.Days)
		assert.Equal(t, 800.0, q.DailyRate)
		assert.Equal(t, 16300.0, q.Total) // 800*20 + 300 surcharge
	})

	t.Run("Standard preset stays on ten-day tier at 20 days", func(t *testing.T) {
		q := PriceRental(rates, "2024-03-01", "2024-03-21", PriceOptions{Tiers: StandardTiers})
		assert.Equal(t, 900.0, q.DailyRate)
		assert.Equal(t, 18000.0, q.Total)
	})

	t.Run("Unset tier price falls through", func(t *testing.T) {
		q := PriceRental(RateTable{Daily: 1000}, "2024-03-01", "2024-03-13", PriceOptions{Tiers: StandardTiers})
		assert.Equal(t, 1000.0, q.DailyRate)
		assert.Equal(t, 12000.0, q.Total)
	})

	t.Run("Manual daily rate overrides standard tier only", func(t *testing.T) {
		q := PriceRental(rates, "2024-03-01", "2024-03-04", PriceOptions{ManualDailyRate: 1200, Tiers: StandardTiers})
		assert.Equal(t, 1200.0, q.DailyRate)
		assert.Equal(t, 3600.0, q.Total)

		// The ten-day tier ignores the override.
		q = PriceRental(rates, "2024-03-01", "2024-03-13", PriceOptions{ManualDailyRate: 1200, Tiers: StandardTiers})
		assert.Equal(t, 900.0, q.DailyRate)
	})

	t.Run("Discount floors at zero", func(t *testing.T) {
		q := PriceRental(RateTable{Daily: 100}, "2024-03-01", "2024-03-06", PriceOptions{Discount: 800, Tiers: StandardTiers})
		assert.Equal(t, 0.0, q.Total) // 500 before discount
		assert.Len(t, q.Breakdown, 2)
		assert.Equal(t, "Discount", q.Breakdown[1].Label)
		assert.Equal(t, -800.0, q.Breakdown[1].Amount)
	})

	t.Run("Zero days yields empty quote", func(t *testing.T) {
		q := PriceRental(rates, "2024-03-01", "2024-03-01", PriceOptions{Tiers: StandardTiers})
		assert.Equal(t, 0.0, q.Total)
		assert.Empty(t, q.Breakdown)
	})

	t.Run("Total non-decreasing in days within a tier", func(t *testing.T) {
		ends := []string{"2024-03-02", "2024-03-03", "2024-03-05", "2024-03-08", "2024-03-10"}
		prev := 0.0
		for _, end := range ends {
			q := PriceRental(rates, "2024-03-01", end, PriceOptions{Tiers: StandardTiers})
			assert.GreaterOrEqual(t, q.Total, prev)
			prev = q.Total
		}
	})
}
