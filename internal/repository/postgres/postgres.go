package postgres

import (
	"database/sql"

	"motorent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DriverRepository
	repository.MotorcycleRepository
	repository.PlanRepository
	repository.RentalRepository
	repository.StatusHistoryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		DriverRepository:        NewDriverRepository(db),
		MotorcycleRepository:    NewMotorcycleRepository(db),
		PlanRepository:          NewPlanRepository(db),
		RentalRepository:        NewRentalRepository(db),
		StatusHistoryRepository: NewStatusHistoryRepository(db),
	}
}
