package derive

import (
	"fmt"
	"sort"
	"time"

	"fleetrental-backend/internal/domain"
)

type AlertSeverity string

const (
	AlertSeverityWarning     AlertSeverity = "warning"
	AlertSeverityDestructive AlertSeverity = "destructive"
)

const (
	// expiryWindowDays is how far ahead document-expiry alerts look.
	expiryWindowDays = 7
	// overdueGraceDays is how long past the rental end date an unpaid
	// balance is tolerated before it is flagged.
	overdueGraceDays = 15
	// overdueTolerance ignores small residual balances left by rounding.
	overdueTolerance = 10
)

// Alert is one derived notification. Alerts are recomputed from snapshots on
// every call; nothing is persisted and there is no read/unread state, so the
// unread count is simply the alert count.
type Alert struct {
	ID            string        `json:"id"`
	Severity      AlertSeverity `json:"severity"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	CarID         string        `json:"car_id,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
}

// Notifications scans cars for expiring documents and transactions for
// overdue balances. Destructive alerts sort before warnings; within a
// severity the input order is kept.
func Notifications(cars []domain.Car, transactions []domain.Transaction, now time.Time) []Alert {
	var alerts []Alert

	for _, car := range cars {
		docs := []struct {
			name string
			date string
		}{
			{"Insurance", car.InsuranceValidTo},
			{"Tax", car.TaxValidTo},
			{"Fitness", car.FitnessValidTo},
		}
		for _, doc := range docs {
			expiry, ok := ParseFlexibleTime(doc.date)
			if !ok {
				continue
			}
			daysLeft := calendarDaysBetween(now, expiry)
			if daysLeft > expiryWindowDays {
				continue
			}
			alert := Alert{
				ID:       fmt.Sprintf("expiry-%s-%s", car.ID, doc.name),
				Severity: AlertSeverityWarning,
				Title:    fmt.Sprintf("%s expiry: %s %s (%s)", doc.name, car.Make, car.Model, car.PlateNumber),
				CarID:    car.ID,
			}
			switch {
			case daysLeft < 0:
				alert.Severity = AlertSeverityDestructive
				alert.Message = fmt.Sprintf("%s expired %d days ago", doc.name, -daysLeft)
			case daysLeft == 0:
				alert.Severity = AlertSeverityDestructive
				alert.Message = fmt.Sprintf("%s expires today", doc.name)
			default:
				alert.Message = fmt.Sprintf("%s expires in %d days", doc.name, daysLeft)
			}
			alerts = append(alerts, alert)
		}
	}

	overdueCutoff := now.AddDate(0, 0, -overdueGraceDays)
	for _, tx := range transactions {
		if tx.Status == domain.TransactionStatusCancelled {
			continue
		}
		end, ok := ParseFlexibleTime(tx.EndDate)
		if !ok || !end.Before(overdueCutoff) {
			continue
		}
		ledger := ComputeLedger(tx.Payments, tx.AmountPaid, tx.StartDate, tx.Total)
		if ledger.PendingBalance <= overdueTolerance {
			continue
		}
		daysOverdue := calendarDaysBetween(end, now)
		alerts = append(alerts, Alert{
			ID:            fmt.Sprintf("overdue-%s", tx.ID),
			Severity:      AlertSeverityDestructive,
			Title:         "Overdue payment",
			Message:       fmt.Sprintf("Balance of %.0f pending, rental ended %d days ago", ledger.PendingBalance, daysOverdue),
			TransactionID: tx.ID,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity == AlertSeverityDestructive && alerts[j].Severity != AlertSeverityDestructive
	})
	return alerts
}

// UnreadCount mirrors the dashboard badge: every derived alert counts.
func UnreadCount(alerts []Alert) int {
	return len(alerts)
}
