package service_test

import (
	"context"
	"testing"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarService_ListCars_ResolvesStatus(t *testing.T) {
	ctx := context.Background()
	carRepo := new(MockCarRepo)
	maintRepo := new(MockMaintenanceRepo)
	txRepo := new(MockTransactionRepo)
	svc := service.NewCarService(carRepo, maintRepo, txRepo)

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")

	carRepo.On("List", ctx).Return([]domain.Car{
		{ID: "car-rented", Status: domain.CarStatusAvailable},
		{ID: "car-workshop", Status: domain.CarStatusAvailable},
		{ID: "car-idle", Status: domain.CarStatusLegacyRented},
	}, nil)
	maintRepo.On("List", ctx).Return([]domain.MaintenanceRecord{
		{ID: "m-1", CarID: "car-workshop", Date: today}, // no return date, still in the workshop
	}, nil)
	txRepo.On("List", ctx).Return([]domain.Transaction{
		{
			ID:        "tx-1",
			CarID:     "car-rented",
			StartDate: today,
			EndDate:   tomorrow,
			Status:    domain.TransactionStatusActive,
		},
	}, nil)

	views, err := svc.ListCars(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	byID := make(map[string]domain.CarStatus, len(views))
	for _, v := range views {
		byID[v.ID] = v.ResolvedStatus
	}
	assert.Equal(t, domain.CarStatusOnRent, byID["car-rented"])
	assert.Equal(t, domain.CarStatusOnMaintenance, byID["car-workshop"])
	// Legacy stored value normalizes to Available when nothing is active.
	assert.Equal(t, domain.CarStatusAvailable, byID["car-idle"])
}

func TestCarService_GetCar(t *testing.T) {
	ctx := context.Background()
	carRepo := new(MockCarRepo)
	maintRepo := new(MockMaintenanceRepo)
	txRepo := new(MockTransactionRepo)
	svc := service.NewCarService(carRepo, maintRepo, txRepo)

	carRepo.On("GetByID", ctx, "car-1").Return(&domain.Car{ID: "car-1", Make: "Tata", Model: "Nexon"}, nil)
	maintRepo.On("ListByCar", ctx, "car-1").Return([]domain.MaintenanceRecord{}, nil)
	txRepo.On("ListByCar", ctx, "car-1").Return([]domain.Transaction{}, nil)

	view, err := svc.GetCar(ctx, "car-1")
	require.NoError(t, err)
	assert.Equal(t, "Nexon", view.Model)
	assert.Equal(t, domain.CarStatusAvailable, view.ResolvedStatus)
}
