package service

import (
	"context"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository"
)

type maintenanceService struct {
	maintRepo repository.MaintenanceRepository
	carRepo   repository.CarRepository
}

func NewMaintenanceService(
	maintRepo repository.MaintenanceRepository,
	carRepo repository.CarRepository,
) MaintenanceService {
	return &maintenanceService{maintRepo: maintRepo, carRepo: carRepo}
}

// AddRecord creates the workshop record and, as a documented side effect,
// sets the car's stored status hint to On Maintenance. Display status still
// comes from the resolver; the hint only survives until the next explicit
// write.
func (s *maintenanceService) AddRecord(ctx context.Context, rec *domain.MaintenanceRecord) error {
	if err := s.maintRepo.Create(ctx, rec); err != nil {
		return err
	}
	s.setCarStatusHint(ctx, rec.CarID, domain.CarStatusOnMaintenance)
	return nil
}

func (s *maintenanceService) GetRecord(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	return s.maintRepo.GetByID(ctx, id)
}

// UpdateRecord persists the record; when the update sets a return date on a
// previously ongoing record, the car's stored hint is reset to Available.
func (s *maintenanceService) UpdateRecord(ctx context.Context, rec *domain.MaintenanceRecord) error {
	prev, err := s.maintRepo.GetByID(ctx, rec.ID)
	if err != nil {
		return err
	}
	if err := s.maintRepo.Update(ctx, rec); err != nil {
		return err
	}
	if prev.ReturnDate == "" && rec.ReturnDate != "" {
		s.setCarStatusHint(ctx, rec.CarID, domain.CarStatusAvailable)
	}
	return nil
}

func (s *maintenanceService) DeleteRecord(ctx context.Context, id string) error {
	return s.maintRepo.Delete(ctx, id)
}

func (s *maintenanceService) ListRecords(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return s.maintRepo.List(ctx)
}

func (s *maintenanceService) ListRecordsByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error) {
	return s.maintRepo.ListByCar(ctx, carID)
}

func (s *maintenanceService) setCarStatusHint(ctx context.Context, carID string, status domain.CarStatus) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		logger.Error("Failed to load car for status hint", "car_id", carID, "error", err)
		return
	}
	car.Status = status
	if err := s.carRepo.Update(ctx, car); err != nil {
		logger.Error("Failed to write car status hint", "car_id", carID, "status", status, "error", err)
	}
}
