package derive

import (
	"fleetrental-backend/internal/domain"
)

// LegacyPaymentID marks the synthetic entry created for pre-migration
// transactions that carry a single amount_paid total instead of a payment
// list.
const LegacyPaymentID = "legacy-initial-payment"

// LedgerSummary is the reduction of one transaction's payment history.
type LedgerSummary struct {
	TotalPaid      float64          `json:"total_paid"`
	PendingBalance float64          `json:"pending_balance"`
	Entries        []domain.Payment `json:"entries"`
}

// ComputeLedger reduces a payment list to the net amount received and the
// balance still owed against rentalTotal. When the payment list is empty and
// the record carries a legacy amount_paid, that amount is surfaced as a
// single synthetic Credit dated at the transaction's start date.
func ComputeLedger(payments []domain.Payment, legacyAmountPaid float64, startDate string, rentalTotal float64) LedgerSummary {
	var summary LedgerSummary

	switch {
	case len(payments) > 0:
		summary.Entries = payments
		for _, p := range payments {
			if p.Type == domain.PaymentTypeDebit {
				summary.TotalPaid -= p.Amount
			} else {
				summary.TotalPaid += p.Amount
			}
		}
	case legacyAmountPaid > 0:
		summary.Entries = []domain.Payment{{
			ID:     LegacyPaymentID,
			Date:   startDate,
			Amount: legacyAmountPaid,
			Type:   domain.PaymentTypeCredit,
			Notes:  "Migrated initial payment",
		}}
		summary.TotalPaid = legacyAmountPaid
	}

	summary.PendingBalance = rentalTotal - summary.TotalPaid
	if summary.PendingBalance < 0 {
		summary.PendingBalance = 0
	}
	return summary
}

// PaymentStatusFor returns the payment status implied by the totals. It is
// applied at the moment a payment is appended; deleting a payment does not
// re-run it, matching the dashboard's historical behavior.
func PaymentStatusFor(totalPaid, rentalTotal float64) domain.PaymentStatus {
	if totalPaid >= rentalTotal {
		return domain.PaymentStatusPaid
	}
	return domain.PaymentStatusPending
}
