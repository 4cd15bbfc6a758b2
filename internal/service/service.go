package service

import (
	"context"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, string, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type CarService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id string) (*domain.CarView, error)
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id string) error
	ListCars(ctx context.Context) ([]domain.CarView, error)
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type DealerService interface {
	AddDealer(ctx context.Context, dealer *domain.Dealer) error
	GetDealer(ctx context.Context, id string) (*domain.Dealer, error)
	UpdateDealer(ctx context.Context, dealer *domain.Dealer) error
	DeleteDealer(ctx context.Context, id string) error
	ListDealers(ctx context.Context) ([]domain.Dealer, error)
}

// CreateRentalRequest carries the rental-form inputs. TierPreset selects the
// pricing thresholds of the calling form: "standard" for the generic rental
// drawer, "counter" for the per-car rental counter.
type CreateRentalRequest struct {
	CarID           string
	CustomerID      string
	DealerID        string
	StartDate       string
	EndDate         string
	TierPreset      string
	ManualDailyRate float64
	Discount        float64
	PaymentStatus   domain.PaymentStatus
	InitialPayment  *domain.Payment
	StartMileage    int32
	Notes           string
}

// QuoteRequest previews a price without creating anything.
type QuoteRequest struct {
	CarID           string
	StartDate       string
	EndDate         string
	TierPreset      string
	ManualDailyRate float64
	Discount        float64
}

type RentalService interface {
	CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Transaction, error)
	QuoteRental(ctx context.Context, req QuoteRequest) (*derive.Quote, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, *derive.LedgerSummary, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	CancelTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	CompleteTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	AddPayment(ctx context.Context, transactionID string, payment domain.Payment) (*domain.Transaction, error)
	DeletePayment(ctx context.Context, transactionID, paymentID string) (*domain.Transaction, error)
}

type MaintenanceService interface {
	AddRecord(ctx context.Context, rec *domain.MaintenanceRecord) error
	GetRecord(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	UpdateRecord(ctx context.Context, rec *domain.MaintenanceRecord) error
	DeleteRecord(ctx context.Context, id string) error
	ListRecords(ctx context.Context) ([]domain.MaintenanceRecord, error)
	ListRecordsByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error)
}

type RegisterService interface {
	AddEntry(ctx context.Context, entry *domain.RegisterEntry) error
	ListEntries(ctx context.Context) ([]domain.RegisterEntry, error)
	ListEntriesByCar(ctx context.Context, carID string) ([]domain.RegisterEntry, error)
}

type AlertService interface {
	Notifications(ctx context.Context) ([]derive.Alert, int, error) // alerts, unread count
}

type InvoiceService interface {
	BuildInvoice(ctx context.Context, transactionID string) (*domain.Invoice, error)
}

type EmailService interface {
	SendAlertDigest(ctx context.Context, subject string, alerts []derive.Alert) error
}
