package service

import (
	"context"
	"time"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type carService struct {
	carRepo   repository.CarRepository
	maintRepo repository.MaintenanceRepository
	txRepo    repository.TransactionRepository
}

func NewCarService(
	carRepo repository.CarRepository,
	maintRepo repository.MaintenanceRepository,
	txRepo repository.TransactionRepository,
) CarService {
	return &carService{carRepo: carRepo, maintRepo: maintRepo, txRepo: txRepo}
}

func (s *carService) AddCar(ctx context.Context, car *domain.Car) error {
	return s.carRepo.Create(ctx, car)
}

func (s *carService) GetCar(ctx context.Context, id string) (*domain.CarView, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintRepo.ListByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.ListByCar(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.CarView{
		Car:            *car,
		ResolvedStatus: derive.ResolveStatus(*car, maintenance, transactions, time.Now()),
	}, nil
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	return s.carRepo.Update(ctx, car)
}

func (s *carService) DeleteCar(ctx context.Context, id string) error {
	return s.carRepo.Delete(ctx, id)
}

// ListCars resolves each car's effective status from one snapshot of the
// maintenance and transaction collections. The resolved status is display
// state only; it is never written back.
func (s *carService) ListCars(ctx context.Context) ([]domain.CarView, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.maintRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]domain.CarView, 0, len(cars))
	for _, car := range cars {
		views = append(views, domain.CarView{
			Car:            car,
			ResolvedStatus: derive.ResolveStatus(car, maintenance, transactions, now),
		})
	}
	return views, nil
}
