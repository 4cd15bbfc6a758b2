package service

import (
	"context"
	"errors"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type dealerService struct {
	dealerRepo repository.DealerRepository
}

func NewDealerService(dealerRepo repository.DealerRepository) DealerService {
	return &dealerService{dealerRepo: dealerRepo}
}

func (s *dealerService) AddDealer(ctx context.Context, dealer *domain.Dealer) error {
	if dealer.PhoneNumber != "" {
		existing, err := s.dealerRepo.GetByPhone(ctx, dealer.PhoneNumber)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if existing != nil {
			return &DuplicatePhoneError{Phone: dealer.PhoneNumber}
		}
	}
	return s.dealerRepo.Create(ctx, dealer)
}

func (s *dealerService) GetDealer(ctx context.Context, id string) (*domain.Dealer, error) {
	return s.dealerRepo.GetByID(ctx, id)
}

func (s *dealerService) UpdateDealer(ctx context.Context, dealer *domain.Dealer) error {
	if dealer.PhoneNumber != "" {
		existing, err := s.dealerRepo.GetByPhone(ctx, dealer.PhoneNumber)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if existing != nil && existing.ID != dealer.ID {
			return &DuplicatePhoneError{Phone: dealer.PhoneNumber}
		}
	}
	return s.dealerRepo.Update(ctx, dealer)
}

func (s *dealerService) DeleteDealer(ctx context.Context, id string) error {
	return s.dealerRepo.Delete(ctx, id)
}

func (s *dealerService) ListDealers(ctx context.Context) ([]domain.Dealer, error) {
	return s.dealerRepo.List(ctx)
}
