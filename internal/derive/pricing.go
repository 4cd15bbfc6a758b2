package derive

import (
	"fmt"
	"math"

	"fleetrental-backend/internal/domain"
)

// RateTable is a car's pricing snapshot. Daily is required; TenDay and
// Monthly are optional, 0 means the tier is not offered for this car.
type RateTable struct {
	Daily   float64
	TenDay  float64
	Monthly float64
}

// TierConfig selects which rental durations map to which pricing bracket.
// The two historical entry points of the dashboard applied different
// thresholds, so the thresholds are configuration, not constants: changing
// either preset changes billed amounts.
type TierConfig struct {
	MonthlyMinDays   int
	TenDayMinDays    int
	MonthlySurcharge float64
}

// StandardTiers is the generic rental-form configuration.
var StandardTiers = TierConfig{MonthlyMinDays: 30, TenDayMinDays: 10}

// CounterTiers is the per-car rental-counter configuration: the monthly
// bracket opens at 20 days and carries a flat surcharge.
var CounterTiers = TierConfig{MonthlyMinDays: 20, TenDayMinDays: 10, MonthlySurcharge: 300}

// PriceOptions carries the per-booking inputs of a quote. ManualDailyRate,
// when positive, replaces the car's daily rate on the standard tier only.
type PriceOptions struct {
	ManualDailyRate float64
	Discount        float64
	Tiers           TierConfig
}

// Quote is a priced rental: the total, the effective per-day rate, and the
// display breakdown (one tier line, plus a negative Discount line when a
// discount applied).
type Quote struct {
	Total     float64           `json:"total"`
	Days      int               `json:"days"`
	DailyRate float64           `json:"daily_rate"`
	Breakdown []domain.LineItem `json:"breakdown"`
}

// RentalDays computes the billable day count: the span between the two
// timestamps rounded up to whole days. Unparseable or inverted ranges yield
// 0, which prices to an empty zero quote rather than an error.
func RentalDays(startDate, endDate string) int {
	start, ok := ParseFlexibleTime(startDate)
	if !ok {
		return 0
	}
	end, ok := ParseFlexibleTime(endDate)
	if !ok {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// PriceRental computes the tiered price of a rental. Tier selection walks
// from the longest bracket down: monthly when the duration reaches the
// monthly threshold and a monthly rate is set, then ten-day, then the
// standard daily rate. Tier rates divide down to a per-day rate rounded to
// the nearest whole unit before multiplying back out.
func PriceRental(rates RateTable, startDate, endDate string, opts PriceOptions) Quote {
	days := RentalDays(startDate, endDate)
	if days <= 0 {
		return Quote{}
	}

	tiers := opts.Tiers
	if tiers.MonthlyMinDays == 0 && tiers.TenDayMinDays == 0 {
		tiers = StandardTiers
	}

	var (
		rate  float64
		total float64
		label string
	)
	switch {
	case tiers.MonthlyMinDays > 0 && days >= tiers.MonthlyMinDays && rates.Monthly > 0:
		rate = math.Round(rates.Monthly / 30)
		total = math.Round(rate*float64(days)) + tiers.MonthlySurcharge
		label = fmt.Sprintf("Monthly rate: %d days @ %.0f/day", days, rate)
	case tiers.TenDayMinDays > 0 && days >= tiers.TenDayMinDays && rates.TenDay > 0:
		rate = math.Round(rates.TenDay / 10)
		total = math.Round(rate * float64(days))
		label = fmt.Sprintf("10-day rate: %d days @ %.0f/day", days, rate)
	default:
		rate = rates.Daily
		if opts.ManualDailyRate > 0 {
			rate = opts.ManualDailyRate
		}
		total = math.Round(rate * float64(days))
		label = fmt.Sprintf("Daily rate: %d days @ %.0f/day", days, rate)
	}

	quote := Quote{
		Days:      days,
		DailyRate: rate,
		Breakdown: []domain.LineItem{{Label: label, Amount: total}},
	}

	if opts.Discount > 0 {
		total -= opts.Discount
		if total < 0 {
			total = 0
		}
		quote.Breakdown = append(quote.Breakdown, domain.LineItem{Label: "Discount", Amount: -opts.Discount})
	}
	quote.Total = total
	return quote
}
