package service

import (
	"context"
	"fmt"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository"
)

type rentalService struct {
	txRepo       repository.TransactionRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	registerRepo repository.RegisterRepository
}

func NewRentalService(
	txRepo repository.TransactionRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	registerRepo repository.RegisterRepository,
) RentalService {
	return &rentalService{
		txRepo:       txRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		registerRepo: registerRepo,
	}
}

func tiersForPreset(preset string) derive.TierConfig {
	if preset == "counter" {
		return derive.CounterTiers
	}
	return derive.StandardTiers
}

// CreateRental validates, checks for booking conflicts and prices the rental
// before anything is persisted. On success a transaction is written followed
// by an Exit entry in the register.
func (s *rentalService) CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Transaction, error) {
	start, startOK := derive.ParseFlexibleTime(req.StartDate)
	end, endOK := derive.ParseFlexibleTime(req.EndDate)
	if !startOK || !endOK {
		return nil, ErrMissingDates
	}

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.txRepo.ListByCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	intervals := derive.RentalIntervals(existing, req.CarID)
	if derive.HasOverlap(intervals, derive.Interval{Start: start, End: end}) {
		return nil, ErrBookingConflict
	}

	quote := derive.PriceRental(
		derive.RateTable{Daily: car.Price, TenDay: car.TenDayPrice, Monthly: car.MonthlyPrice},
		req.StartDate, req.EndDate,
		derive.PriceOptions{
			ManualDailyRate: req.ManualDailyRate,
			Discount:        req.Discount,
			Tiers:           tiersForPreset(req.TierPreset),
		},
	)

	tx := &domain.Transaction{
		CarID:         req.CarID,
		CustomerID:    req.CustomerID,
		DealerID:      req.DealerID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Total:         quote.Total,
		Status:        domain.TransactionStatusActive,
		PaymentStatus: req.PaymentStatus,
		Breakdown:     quote.Breakdown,
		DailyRate:     quote.DailyRate,
		StartMileage:  req.StartMileage,
		Notes:         req.Notes,
	}
	if tx.PaymentStatus == "" {
		tx.PaymentStatus = domain.PaymentStatusPending
	}
	if req.InitialPayment != nil && req.InitialPayment.Amount > 0 {
		p := *req.InitialPayment
		if p.Type == "" {
			p.Type = domain.PaymentTypeCredit
		}
		tx.Payments = append(tx.Payments, p)
		ledger := derive.ComputeLedger(tx.Payments, 0, tx.StartDate, tx.Total)
		tx.PaymentStatus = derive.PaymentStatusFor(ledger.TotalPaid, tx.Total)
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	// The register logs the car leaving the lot. A failed register write
	// does not undo the booking.
	entry := &domain.RegisterEntry{
		CarID: req.CarID,
		Name:  customer.Name,
		Type:  domain.RegisterEntryTypeExit,
		Notes: fmt.Sprintf("Rental %s", tx.ID),
	}
	if err := s.registerRepo.Create(ctx, entry); err != nil {
		logger.Error("Failed to append register entry for rental", "transaction_id", tx.ID, "error", err)
	}

	return tx, nil
}

func (s *rentalService) QuoteRental(ctx context.Context, req QuoteRequest) (*derive.Quote, error) {
	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	quote := derive.PriceRental(
		derive.RateTable{Daily: car.Price, TenDay: car.TenDayPrice, Monthly: car.MonthlyPrice},
		req.StartDate, req.EndDate,
		derive.PriceOptions{
			ManualDailyRate: req.ManualDailyRate,
			Discount:        req.Discount,
			Tiers:           tiersForPreset(req.TierPreset),
		},
	)
	return &quote, nil
}

func (s *rentalService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, *derive.LedgerSummary, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	ledger := derive.ComputeLedger(tx.Payments, tx.AmountPaid, tx.StartDate, tx.Total)
	return tx, &ledger, nil
}

func (s *rentalService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txRepo.List(ctx)
}

func (s *rentalService) CancelTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.setStatus(ctx, id, domain.TransactionStatusCancelled)
}

func (s *rentalService) CompleteTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.setStatus(ctx, id, domain.TransactionStatusCompleted)
}

func (s *rentalService) setStatus(ctx context.Context, id string, status domain.TransactionStatus) (*domain.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tx.Status = status
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// AddPayment appends to the payment history and recomputes the payment
// status at that moment.
func (s *rentalService) AddPayment(ctx context.Context, transactionID string, payment domain.Payment) (*domain.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment.Type == "" {
		payment.Type = domain.PaymentTypeCredit
	}
	if err := s.txRepo.AddPayment(ctx, transactionID, &payment); err != nil {
		return nil, err
	}
	tx.Payments = append(tx.Payments, payment)

	ledger := derive.ComputeLedger(tx.Payments, tx.AmountPaid, tx.StartDate, tx.Total)
	tx.PaymentStatus = derive.PaymentStatusFor(ledger.TotalPaid, tx.Total)
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeletePayment removes exactly one entry. The payment status is left as-is:
// the dashboard has always required a manual correction after deleting a
// payment, and changing that would silently flip historical records.
func (s *rentalService) DeletePayment(ctx context.Context, transactionID, paymentID string) (*domain.Transaction, error) {
	if err := s.txRepo.DeletePayment(ctx, transactionID, paymentID); err != nil {
		return nil, err
	}
	return s.txRepo.GetByID(ctx, transactionID)
}
