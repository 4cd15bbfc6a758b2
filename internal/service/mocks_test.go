package service_test

import (
	"context"

	"fleetrental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockDealerRepo
type MockDealerRepo struct {
	mock.Mock
}

func (m *MockDealerRepo) Create(ctx context.Context, dealer *domain.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}
func (m *MockDealerRepo) GetByID(ctx context.Context, id string) (*domain.Dealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dealer), args.Error(1)
}
func (m *MockDealerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Dealer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dealer), args.Error(1)
}
func (m *MockDealerRepo) Update(ctx context.Context, dealer *domain.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}
func (m *MockDealerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDealerRepo) List(ctx context.Context) ([]domain.Dealer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Dealer), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) Update(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListByCar(ctx context.Context, carID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) AddPayment(ctx context.Context, transactionID string, payment *domain.Payment) error {
	args := m.Called(ctx, transactionID, payment)
	return args.Error(0)
}
func (m *MockTransactionRepo) DeletePayment(ctx context.Context, transactionID, paymentID string) error {
	args := m.Called(ctx, transactionID, paymentID)
	return args.Error(0)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, rec *domain.MaintenanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceRepo) Update(ctx context.Context, rec *domain.MaintenanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) List(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceRepo) ListByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}

// MockRegisterRepo
type MockRegisterRepo struct {
	mock.Mock
}

func (m *MockRegisterRepo) Create(ctx context.Context, entry *domain.RegisterEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockRegisterRepo) List(ctx context.Context) ([]domain.RegisterEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RegisterEntry), args.Error(1)
}
func (m *MockRegisterRepo) ListByCar(ctx context.Context, carID string) ([]domain.RegisterEntry, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.RegisterEntry), args.Error(1)
}

// MockStaffUserRepo
type MockStaffUserRepo struct {
	mock.Mock
}

func (m *MockStaffUserRepo) Create(ctx context.Context, user *domain.StaffUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockStaffUserRepo) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}
func (m *MockStaffUserRepo) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}
