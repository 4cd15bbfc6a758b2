package derive

import (
	"time"

	"fleetrental-backend/internal/domain"
)

// ResolveStatus computes a car's effective status for "now" from its
// maintenance and rental records. It is a pure read: the stored status field
// is only a hint mutated by explicit write paths, and legacy hint values
// fall back to Available here so that expired maintenance or rental windows
// clear themselves without a reset write.
//
// An active rental always wins over an active maintenance window: a car in
// the middle of a rental is reported as rented even if a workshop record
// technically overlaps.
func ResolveStatus(car domain.Car, maintenance []domain.MaintenanceRecord, transactions []domain.Transaction, now time.Time) domain.CarStatus {
	status := normalizeStoredStatus(car.Status)

	for _, rec := range maintenance {
		if rec.CarID != car.ID {
			continue
		}
		if maintenanceActive(rec, now) {
			status = domain.CarStatusOnMaintenance
			break
		}
	}

	for _, tx := range transactions {
		if tx.CarID != car.ID {
			continue
		}
		if rentalActive(tx, now) {
			status = domain.CarStatusOnRent
			break
		}
	}

	return status
}

// normalizeStoredStatus maps legacy and derived stored values back to the
// Available baseline.
func normalizeStoredStatus(s domain.CarStatus) domain.CarStatus {
	switch s {
	case domain.CarStatusOnRent, domain.CarStatusOnMaintenance,
		domain.CarStatusLegacyRented, domain.CarStatusLegacyMaintenance:
		return domain.CarStatusAvailable
	case domain.CarStatusAvailable:
		return domain.CarStatusAvailable
	default:
		return domain.CarStatusAvailable
	}
}

// maintenanceActive uses date-only comparison: the window opens at the start
// of the record's date and, when a return date is set, closes at the end of
// that day. A record with no return date is ongoing.
func maintenanceActive(rec domain.MaintenanceRecord, now time.Time) bool {
	start, ok := ParseFlexibleTime(rec.Date)
	if !ok {
		return false
	}
	if now.Before(StartOfDay(start)) {
		return false
	}
	if rec.ReturnDate == "" {
		return true
	}
	ret, ok := ParseFlexibleTime(rec.ReturnDate)
	if !ok {
		return true
	}
	return !now.After(EndOfDay(ret))
}

// rentalActive uses full datetime comparison with inclusive bounds.
// Cancelled and completed rentals never count.
func rentalActive(tx domain.Transaction, now time.Time) bool {
	if tx.Status == domain.TransactionStatusCancelled || tx.Status == domain.TransactionStatusCompleted {
		return false
	}
	start, ok := ParseFlexibleTime(tx.StartDate)
	if !ok {
		return false
	}
	end, ok := ParseFlexibleTime(tx.EndDate)
	if !ok {
		return false
	}
	return !now.Before(start) && !now.After(end)
}
