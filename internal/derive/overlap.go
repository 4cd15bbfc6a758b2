package derive

import (
	"time"

	"fleetrental-backend/internal/domain"
)

// Interval is a closed rental period. Boundaries are inclusive: a booking
// that starts the instant another ends still conflicts.
type Interval struct {
	Start time.Time
	End   time.Time
}

// HasOverlap reports whether the proposed interval intersects any existing
// one. Two closed intervals [s1,e1] and [s2,e2] overlap iff s1 <= e2 and
// s2 <= e1.
func HasOverlap(existing []Interval, proposed Interval) bool {
	for _, iv := range existing {
		if !iv.Start.After(proposed.End) && !proposed.Start.After(iv.End) {
			return true
		}
	}
	return false
}

// RentalIntervals extracts the booking intervals of a car's non-cancelled
// transactions. Records with unparseable dates impose no constraint and are
// skipped.
func RentalIntervals(transactions []domain.Transaction, carID string) []Interval {
	var intervals []Interval
	for _, tx := range transactions {
		if tx.CarID != carID || tx.Status == domain.TransactionStatusCancelled {
			continue
		}
		start, ok := ParseFlexibleTime(tx.StartDate)
		if !ok {
			continue
		}
		end, ok := ParseFlexibleTime(tx.EndDate)
		if !ok {
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return intervals
}
