package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

var ErrInvalidLicenseType = errors.New("unknown license type")

type catalogService struct {
	motoRepo   repository.MotorcycleRepository
	driverRepo repository.DriverRepository
	planRepo   repository.PlanRepository
}

func NewCatalogService(
	motoRepo repository.MotorcycleRepository,
	driverRepo repository.DriverRepository,
	planRepo repository.PlanRepository,
) CatalogService {
	return &catalogService{
		motoRepo:   motoRepo,
		driverRepo: driverRepo,
		planRepo:   planRepo,
	}
}

func (s *catalogService) RegisterMotorcycle(ctx context.Context, moto *domain.Motorcycle) error {
	moto.IsRented = false
	return s.motoRepo.Create(ctx, moto)
}

func (s *catalogService) ListMotorcycles(ctx context.Context, onlyAvailable bool) ([]domain.Motorcycle, error) {
	return s.motoRepo.List(ctx, onlyAvailable)
}

func (s *catalogService) RegisterDriver(ctx context.Context, driver *domain.DeliveryDriver) error {
	if !driver.LicenseType.Valid() {
		return ErrInvalidLicenseType
	}
	return s.driverRepo.Create(ctx, driver)
}

func (s *catalogService) GetDriver(ctx context.Context, id uuid.UUID) (*domain.DeliveryDriver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *catalogService) ListPlans(ctx context.Context) ([]domain.RentalPlan, error) {
	return s.planRepo.ListActive(ctx)
}

func (s *catalogService) GetPlan(ctx context.Context, id uuid.UUID) (*domain.RentalPlan, error) {
	return s.planRepo.GetByID(ctx, id)
}
