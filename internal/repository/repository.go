package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotAvailable is returned by MarkRented when the motorcycle is
	// already flagged rented (the conditional update matched no row).
	ErrNotAvailable = errors.New("motorcycle not available")
)

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.DeliveryDriver) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryDriver, error)
}

type MotorcycleRepository interface {
	Create(ctx context.Context, moto *domain.Motorcycle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error)
	List(ctx context.Context, onlyAvailable bool) ([]domain.Motorcycle, error)

	// MarkRented atomically claims the motorcycle: the flag flips only if it
	// is currently clear. Returns ErrNotAvailable when already rented.
	MarkRented(ctx context.Context, id uuid.UUID) error
	// Release clears the rented flag.
	Release(ctx context.Context, id uuid.UUID) error
}

type PlanRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RentalPlan, error)
	ListActive(ctx context.Context) ([]domain.RentalPlan, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.Rental, error)
	DeleteByDriver(ctx context.Context, driverID uuid.UUID) (int64, error)
}

type StatusHistoryRepository interface {
	Append(ctx context.Context, entry *domain.RentalStatusHistory) error
	ListByRental(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalStatusHistory, error)
}
