package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, d *domain.DeliveryDriver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}

// MockMotorcycleRepo
type MockMotorcycleRepo struct {
	mock.Mock
}

func (m *MockMotorcycleRepo) Create(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) List(ctx context.Context, onlyAvailable bool) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) MarkRented(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) Release(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlanRepo
type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RentalPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPlan), args.Error(1)
}
func (m *MockPlanRepo) ListActive(ctx context.Context) ([]domain.RentalPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalPlan), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.Rental, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) DeleteByDriver(ctx context.Context, driverID uuid.UUID) (int64, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).(int64), args.Error(1)
}

// MockHistoryRepo
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Append(ctx context.Context, e *domain.RentalStatusHistory) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockHistoryRepo) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalStatusHistory, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalStatusHistory), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, email, name, model string, expectedEnd time.Time, totalCents int64) error {
	args := m.Called(ctx, email, name, model, expectedEnd, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalSettled(ctx context.Context, email, name, model string, totalCents int64) error {
	args := m.Called(ctx, email, name, model, totalCents)
	return args.Error(0)
}
