package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/pricing"
)

type RentalService interface {
	CreateRental(ctx context.Context, driverID, motorcycleID, planID uuid.UUID, startDate, endDate time.Time) (*domain.Rental, error)
	MarkCompleted(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error)
	CancelRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error)
	SimulateFinalPrice(ctx context.Context, rentalID uuid.UUID, returnDate time.Time) (*pricing.Settlement, error)
	GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error)
	GetRentalHistory(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalStatusHistory, error)
	DeleteRentalsByDriver(ctx context.Context, driverID uuid.UUID) error
}

type CatalogService interface {
	RegisterMotorcycle(ctx context.Context, moto *domain.Motorcycle) error
	ListMotorcycles(ctx context.Context, onlyAvailable bool) ([]domain.Motorcycle, error)
	RegisterDriver(ctx context.Context, driver *domain.DeliveryDriver) error
	GetDriver(ctx context.Context, id uuid.UUID) (*domain.DeliveryDriver, error)
	ListPlans(ctx context.Context) ([]domain.RentalPlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.RentalPlan, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, email, name, model string, expectedEnd time.Time, totalCents int64) error
	SendRentalSettled(ctx context.Context, email, name, model string, totalCents int64) error
}
