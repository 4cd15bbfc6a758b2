package service

import (
	"context"
	"time"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/repository"
)

type alertService struct {
	carRepo repository.CarRepository
	txRepo  repository.TransactionRepository
}

func NewAlertService(carRepo repository.CarRepository, txRepo repository.TransactionRepository) AlertService {
	return &alertService{carRepo: carRepo, txRepo: txRepo}
}

// Notifications re-derives the alert feed from fresh snapshots on every
// call. Nothing is persisted, so the unread count is the alert count.
func (s *alertService) Notifications(ctx context.Context) ([]derive.Alert, int, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	transactions, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	alerts := derive.Notifications(cars, transactions, time.Now())
	return alerts, derive.UnreadCount(alerts), nil
}
