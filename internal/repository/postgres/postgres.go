package postgres

import (
	"database/sql"

	"fleetrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CustomerRepository
	repository.DealerRepository
	repository.TransactionRepository
	repository.MaintenanceRepository
	repository.RegisterRepository
	repository.StaffUserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CarRepository:         NewCarRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		DealerRepository:      NewDealerRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		MaintenanceRepository: NewMaintenanceRepository(db),
		RegisterRepository:    NewRegisterRepository(db),
		StaffUserRepository:   NewStaffUserRepository(db),
	}
}
