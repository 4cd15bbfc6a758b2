package derive

import (
	"testing"

	"fleetrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputeLedger(t *testing.T) {
	t.Run("Credits minus debits", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: "p1", Amount: 3000, Type: domain.PaymentTypeCredit},
			{ID: "p2", Amount: 500, Type: domain.PaymentTypeDebit},
			{ID: "p3", Amount: 1000, Type: domain.PaymentTypeCredit},
		}
		summary := ComputeLedger(payments, 0, "2024-01-10", 5000)
		assert.Equal(t, 3500.0, summary.TotalPaid)
		assert.Equal(t, 1500.0, summary.PendingBalance)
		assert.Len(t, summary.Entries, 3)
	})

	t.Run("Legacy migration", func(t *testing.T) {
		// Pre-migration record: no payment list, single amount_paid total.
		summary := ComputeLedger(nil, 2000, "2024-01-10", 5000)
		assert.Equal(t, 2000.0, summary.TotalPaid)
		assert.Equal(t, 3000.0, summary.PendingBalance)
		assert.Len(t, summary.Entries, 1)
		assert.Equal(t, LegacyPaymentID, summary.Entries[0].ID)
		assert.Equal(t, "2024-01-10", summary.Entries[0].Date)
		assert.Equal(t, domain.PaymentTypeCredit, summary.Entries[0].Type)
		assert.Equal(t, 2000.0, summary.Entries[0].Amount)
	})

	t.Run("Payments present ignores legacy amount", func(t *testing.T) {
		payments := []domain.Payment{{ID: "p1", Amount: 1000, Type: domain.PaymentTypeCredit}}
		summary := ComputeLedger(payments, 2000, "2024-01-10", 5000)
		assert.Equal(t, 1000.0, summary.TotalPaid)
		assert.Equal(t, 4000.0, summary.PendingBalance)
	})

	t.Run("Overpayment floors pending at zero", func(t *testing.T) {
		payments := []domain.Payment{{ID: "p1", Amount: 6000, Type: domain.PaymentTypeCredit}}
		summary := ComputeLedger(payments, 0, "2024-01-10", 5000)
		assert.Equal(t, 6000.0, summary.TotalPaid)
		assert.Equal(t, 0.0, summary.PendingBalance)
	})

	t.Run("Empty input", func(t *testing.T) {
		summary := ComputeLedger(nil, 0, "", 5000)
		assert.Equal(t, 0.0, summary.TotalPaid)
		assert.Equal(t, 5000.0, summary.PendingBalance)
		assert.Empty(t, summary.Entries)
	})

	t.Run("Idempotent", func(t *testing.T) {
		payments := []domain.Payment{
			{ID: "p1", Amount: 3000, Type: domain.PaymentTypeCredit},
			{ID: "p2", Amount: 500, Type: domain.PaymentTypeDebit},
		}
		first := ComputeLedger(payments, 0, "2024-01-10", 5000)
		second := ComputeLedger(payments, 0, "2024-01-10", 5000)
		assert.Equal(t, first, second)
	})
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusPaid, PaymentStatusFor(5000, 5000))
	assert.Equal(t, domain.PaymentStatusPaid, PaymentStatusFor(6000, 5000))
	assert.Equal(t, domain.PaymentStatusPending, PaymentStatusFor(4999, 5000))
	assert.Equal(t, domain.PaymentStatusPending, PaymentStatusFor(0, 5000))
}
