package service

import (
	"context"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type registerService struct {
	registerRepo repository.RegisterRepository
}

func NewRegisterService(registerRepo repository.RegisterRepository) RegisterService {
	return &registerService{registerRepo: registerRepo}
}

func (s *registerService) AddEntry(ctx context.Context, entry *domain.RegisterEntry) error {
	if entry.Type == "" {
		entry.Type = domain.RegisterEntryTypeEntry
	}
	return s.registerRepo.Create(ctx, entry)
}

func (s *registerService) ListEntries(ctx context.Context) ([]domain.RegisterEntry, error) {
	return s.registerRepo.List(ctx)
}

func (s *registerService) ListEntriesByCar(ctx context.Context, carID string) ([]domain.RegisterEntry, error) {
	return s.registerRepo.ListByCar(ctx, carID)
}
