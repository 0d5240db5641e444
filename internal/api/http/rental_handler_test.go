package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "motorent-backend/internal/api/http"
	"motorent-backend/internal/domain"
	"motorent-backend/internal/pricing"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/service"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, driverID, motorcycleID, planID uuid.UUID, startDate, endDate time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, driverID, motorcycleID, planID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) MarkCompleted(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CancelRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) SimulateFinalPrice(ctx context.Context, rentalID uuid.UUID, returnDate time.Time) (*pricing.Settlement, error) {
	args := m.Called(ctx, rentalID, returnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Settlement), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRentalHistory(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalStatusHistory, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalStatusHistory), args.Error(1)
}
func (m *MockRentalService) DeleteRentalsByDriver(ctx context.Context, driverID uuid.UUID) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) RegisterMotorcycle(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockCatalogService) ListMotorcycles(ctx context.Context, onlyAvailable bool) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, onlyAvailable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockCatalogService) RegisterDriver(ctx context.Context, driver *domain.DeliveryDriver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}
func (m *MockCatalogService) GetDriver(ctx context.Context, id uuid.UUID) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockCatalogService) ListPlans(ctx context.Context) ([]domain.RentalPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalPlan), args.Error(1)
}
func (m *MockCatalogService) GetPlan(ctx context.Context, id uuid.UUID) (*domain.RentalPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPlan), args.Error(1)
}

func setupRouter() (*MockRentalService, *MockCatalogService, http.Handler) {
	rentalSvc := new(MockRentalService)
	catalogSvc := new(MockCatalogService)
	return rentalSvc, catalogSvc, httpapi.NewRouter(rentalSvc, catalogSvc)
}

func TestRentalHandler_CreateRental(t *testing.T) {
	driverID := uuid.New()
	motoID := uuid.New()
	planID := uuid.New()

	body := func(start, end string) []byte {
		b, _ := json.Marshal(map[string]string{
			"driver_id":     driverID.String(),
			"motorcycle_id": motoID.String(),
			"plan_id":       planID.String(),
			"start_date":    start,
			"end_date":      end,
		})
		return b
	}

	futureStart := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	futureEnd := time.Now().UTC().AddDate(0, 0, 12).Format("2006-01-02")

	t.Run("Created", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		rentalSvc.On("CreateRental", mock.Anything, driverID, motoID, planID, mock.Anything, mock.Anything).
			Return(&domain.Rental{ID: uuid.New(), Status: domain.RentalStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body(futureStart, futureEnd)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Rental
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.RentalStatusPending, got.Status)
	})

	t.Run("StartDateInPast", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()

		past := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body(past, futureEnd)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentalSvc.AssertNotCalled(t, "CreateRental", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, _, router := setupRouter()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body(futureEnd, futureStart)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MotorcycleUnavailable", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		rentalSvc.On("CreateRental", mock.Anything, driverID, motoID, planID, mock.Anything, mock.Anything).
			Return(nil, service.ErrMotorcycleUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body(futureStart, futureEnd)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("IneligibleDriver", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		rentalSvc.On("CreateRental", mock.Anything, driverID, motoID, planID, mock.Anything, mock.Anything).
			Return(nil, service.ErrIneligibleDriver)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body(futureStart, futureEnd)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestRentalHandler_GetRental(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		id := uuid.New()
		rentalSvc.On("GetRental", mock.Anything, id).Return(nil, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/"+id.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, _, router := setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_QuoteRental(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		id := uuid.New()
		rentalSvc.On("SimulateFinalPrice", mock.Anything, id, mock.Anything).
			Return(&pricing.Settlement{BaseCostCents: 70000, DaysEarly: 2, FineCents: 4000, UnpaidDaysCents: 20000, TotalCents: 54000}, nil)

		url := fmt.Sprintf("/api/v1/rentals/%s/quote?return_date=2024-01-06", id)
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got pricing.Settlement
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(54000), got.TotalCents)
	})

	t.Run("MissingReturnDate", func(t *testing.T) {
		_, _, router := setupRouter()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/"+uuid.NewString()+"/quote", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_CompleteRental(t *testing.T) {
	t.Run("Conflict", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		id := uuid.New()
		rentalSvc.On("MarkCompleted", mock.Anything, id).Return(nil, service.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/"+id.String()+"/complete", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRentalHandler_DeleteDriverRentals(t *testing.T) {
	t.Run("NoContent", func(t *testing.T) {
		rentalSvc, _, router := setupRouter()
		id := uuid.New()
		rentalSvc.On("DeleteRentalsByDriver", mock.Anything, id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/drivers/"+id.String()+"/rentals", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
