package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type invoiceService struct {
	txRepo       repository.TransactionRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	dealerRepo   repository.DealerRepository
}

func NewInvoiceService(
	txRepo repository.TransactionRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	dealerRepo repository.DealerRepository,
) InvoiceService {
	return &invoiceService{txRepo: txRepo, carRepo: carRepo, customerRepo: customerRepo, dealerRepo: dealerRepo}
}

// BuildInvoice assembles the bill data for one rental: the transaction, its
// joins, and the ledger reduction. Rendering is the caller's concern.
func (s *invoiceService) BuildInvoice(ctx context.Context, transactionID string) (*domain.Invoice, error) {
	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	ledger := derive.ComputeLedger(tx.Payments, tx.AmountPaid, tx.StartDate, tx.Total)

	invoice := &domain.Invoice{
		TransactionID:  tx.ID,
		InvoiceNumber:  invoiceNumber(tx.ID),
		IssuedOn:       time.Now().UTC().Format("2006-01-02"),
		StartDate:      tx.StartDate,
		EndDate:        tx.EndDate,
		Breakdown:      tx.Breakdown,
		Total:          tx.Total,
		TotalPaid:      ledger.TotalPaid,
		PendingBalance: ledger.PendingBalance,
		Payments:       ledger.Entries,
	}

	// Joins are best-effort: a deleted customer or dealer leaves the field
	// empty rather than failing the invoice.
	if car, err := s.carRepo.GetByID(ctx, tx.CarID); err == nil {
		invoice.Car = car
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if customer, err := s.customerRepo.GetByID(ctx, tx.CustomerID); err == nil {
		invoice.Customer = customer
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if tx.DealerID != "" {
		if dealer, err := s.dealerRepo.GetByID(ctx, tx.DealerID); err == nil {
			invoice.Dealer = dealer
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	return invoice, nil
}

func invoiceNumber(transactionID string) string {
	ref := strings.ReplaceAll(transactionID, "-", "")
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return fmt.Sprintf("INV-%s", strings.ToUpper(ref))
}
