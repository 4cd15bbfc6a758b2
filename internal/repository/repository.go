package repository

import (
	"context"
	"errors"

	"fleetrental-backend/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Car, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type DealerRepository interface {
	Create(ctx context.Context, dealer *domain.Dealer) error
	GetByID(ctx context.Context, id string) (*domain.Dealer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Dealer, error)
	Update(ctx context.Context, dealer *domain.Dealer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Dealer, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Transaction, error)
	ListByCar(ctx context.Context, carID string) ([]domain.Transaction, error)

	// Payments are append-only child rows; they are never edited in place.
	AddPayment(ctx context.Context, transactionID string, payment *domain.Payment) error
	DeletePayment(ctx context.Context, transactionID, paymentID string) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, rec *domain.MaintenanceRecord) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	Update(ctx context.Context, rec *domain.MaintenanceRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.MaintenanceRecord, error)
	ListByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error)
}

type RegisterRepository interface {
	Create(ctx context.Context, entry *domain.RegisterEntry) error
	List(ctx context.Context) ([]domain.RegisterEntry, error)
	ListByCar(ctx context.Context, carID string) ([]domain.RegisterEntry, error)
}

type StaffUserRepository interface {
	Create(ctx context.Context, user *domain.StaffUser) error
	GetByID(ctx context.Context, id string) (*domain.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
}
