package derive

import (
	"testing"
	"time"

	"fleetrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveStatus(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	car := domain.Car{ID: "car-1", Status: domain.CarStatusAvailable}

	t.Run("No records", func(t *testing.T) {
		assert.Equal(t, domain.CarStatusAvailable, ResolveStatus(car, nil, nil, now))
	})

	t.Run("Legacy stored statuses normalize to Available", func(t *testing.T) {
		for _, stored := range []domain.CarStatus{
			domain.CarStatusOnRent,
			domain.CarStatusOnMaintenance,
			domain.CarStatusLegacyRented,
			domain.CarStatusLegacyMaintenance,
		} {
			c := car
			c.Status = stored
			assert.Equal(t, domain.CarStatusAvailable, ResolveStatus(c, nil, nil, now),
				"stored status %q with no active records", stored)
		}
	})

	t.Run("Ongoing maintenance", func(t *testing.T) {
		recs := []domain.MaintenanceRecord{{ID: "m1", CarID: "car-1", Date: "2024-03-08"}}
		assert.Equal(t, domain.CarStatusOnMaintenance, ResolveStatus(car, recs, nil, now))
	})

	t.Run("Maintenance window closed", func(t *testing.T) {
		recs := []domain.MaintenanceRecord{{ID: "m1", CarID: "car-1", Date: "2024-03-01", ReturnDate: "2024-03-05"}}
		assert.Equal(t, domain.CarStatusAvailable, ResolveStatus(car, recs, nil, now))
	})

	t.Run("Maintenance return day counts until end of day", func(t *testing.T) {
		recs := []domain.MaintenanceRecord{{ID: "m1", CarID: "car-1", Date: "2024-03-01", ReturnDate: "2024-03-10"}}
		assert.Equal(t, domain.CarStatusOnMaintenance, ResolveStatus(car, recs, nil, now))
	})

	t.Run("Active rental", func(t *testing.T) {
		txs := []domain.Transaction{{
			ID: "t1", CarID: "car-1", Status: domain.TransactionStatusActive,
			StartDate: "2024-03-09T10:00:00Z", EndDate: "2024-03-12T10:00:00Z",
		}}
		assert.Equal(t, domain.CarStatusOnRent, ResolveStatus(car, nil, txs, now))
	})

	t.Run("Rental wins over maintenance", func(t *testing.T) {
		recs := []domain.MaintenanceRecord{{ID: "m1", CarID: "car-1", Date: "2024-03-08"}}
		txs := []domain.Transaction{{
			ID: "t1", CarID: "car-1", Status: domain.TransactionStatusActive,
			StartDate: "2024-03-09T10:00:00Z", EndDate: "2024-03-12T10:00:00Z",
		}}
		assert.Equal(t, domain.CarStatusOnRent, ResolveStatus(car, recs, txs, now))
	})

	t.Run("Cancelled and completed rentals do not count", func(t *testing.T) {
		for _, status := range []domain.TransactionStatus{
			domain.TransactionStatusCancelled,
			domain.TransactionStatusCompleted,
		} {
			txs := []domain.Transaction{{
				ID: "t1", CarID: "car-1", Status: status,
				StartDate: "2024-03-09T10:00:00Z", EndDate: "2024-03-12T10:00:00Z",
			}}
			assert.Equal(t, domain.CarStatusAvailable, ResolveStatus(car, nil, txs, now))
		}
	})

	t.Run("Expired rental window falls back without a reset write", func(t *testing.T) {
		c := car
		c.Status = domain.CarStatusOnRent
		txs := []domain.Transaction{{
			ID: "t1", CarID: "car-1", Status: domain.TransactionStatusActive,
			StartDate: "2024-02-01T10:00:00Z", EndDate: "2024-02-05T10:00:00Z",
		}}
		assert.Equal(t, domain.CarStatusAvailable, ResolveStatus(c, nil, txs, now))
	})

	t.Run("Records for other cars are ignored", func(t *testing.T) {
		recs := []domain.MaintenanceRecord{{ID: "m1", CarID: "car-2", Date: "2024-03-08"}}
		txs := []domain.Transaction{{
			ID: "t1", CarID: "car-2", Status: domain.TransactionStatusActive,
			StartDate: "2024-03-09T10:00:00Z", EndDate: "2024-03-12T10:00:00Z",
		}}
		assert.Equal(t, domain.CarStatusAvailable, ResolveStatus(car, recs, txs, now))
	})

	t.Run("Rental boundaries are inclusive", func(t *testing.T) {
		txs := []domain.Transaction{{
			ID: "t1", CarID: "car-1", Status: domain.TransactionStatusActive,
			StartDate: "2024-03-10T14:00:00Z", EndDate: "2024-03-12T10:00:00Z",
		}}
		assert.Equal(t, domain.CarStatusOnRent, ResolveStatus(car, nil, txs, now))
	})
}
