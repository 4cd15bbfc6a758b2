package service

import (
	"context"
	"errors"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// AddCustomer guards against duplicate phone numbers before inserting. The
// guard is best-effort: concurrent writers can race it.
func (s *customerService) AddCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.PhoneNumber != "" {
		existing, err := s.customerRepo.GetByPhone(ctx, customer.PhoneNumber)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if existing != nil {
			return &DuplicatePhoneError{Phone: customer.PhoneNumber}
		}
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.PhoneNumber != "" {
		existing, err := s.customerRepo.GetByPhone(ctx, customer.PhoneNumber)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if existing != nil && existing.ID != customer.ID {
			return &DuplicatePhoneError{Phone: customer.PhoneNumber}
		}
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
