package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/pricing"
	"motorent-backend/internal/repository"
)

var (
	ErrIneligibleDriver      = errors.New("driver license class does not permit motorcycle rental")
	ErrMotorcycleUnavailable = errors.New("motorcycle is already rented")
	ErrPlanInactive          = errors.New("rental plan is not active")
	ErrInvalidTransition     = errors.New("illegal rental status transition")
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	motoRepo    repository.MotorcycleRepository
	driverRepo  repository.DriverRepository
	planRepo    repository.PlanRepository
	historyRepo repository.StatusHistoryRepository
	emailSvc    EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	motoRepo repository.MotorcycleRepository,
	driverRepo repository.DriverRepository,
	planRepo repository.PlanRepository,
	historyRepo repository.StatusHistoryRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		motoRepo:    motoRepo,
		driverRepo:  driverRepo,
		planRepo:    planRepo,
		historyRepo: historyRepo,
		emailSvc:    emailSvc,
	}
}

// CreateRental starts a rental under the given plan. The plan's rate and
// duration are snapshotted into the rental; date-range validation (start in
// the future, end after start) is the caller's job.
func (s *rentalService) CreateRental(ctx context.Context, driverID, motorcycleID, planID uuid.UUID, startDate, endDate time.Time) (*domain.Rental, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("driver %s: %w", driverID, err)
	}
	if !driver.LicenseType.PermitsMotorcycle() {
		return nil, ErrIneligibleDriver
	}

	moto, err := s.motoRepo.GetByID(ctx, motorcycleID)
	if err != nil {
		return nil, fmt.Errorf("motorcycle %s: %w", motorcycleID, err)
	}
	if moto.IsRented {
		return nil, ErrMotorcycleUnavailable
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", planID, err)
	}
	if !plan.IsActive {
		return nil, ErrPlanInactive
	}

	rental := &domain.Rental{
		MotorcycleID:    motorcycleID,
		DriverID:        driverID,
		PlanID:          planID,
		StartDate:       startDate.UTC(),
		EndDate:         endDate.UTC(),
		ExpectedEndDate: pricing.ExpectedEndDate(startDate, plan.DurationDays),
		DailyRateCents:  plan.DailyRateCents,
		DurationDays:    plan.DurationDays,
		TotalPriceCents: pricing.BaseCost(plan.DailyRateCents, plan.DurationDays),
		Status:          domain.RentalStatusPending,
	}

	// Claim the motorcycle first with a conditional update. The read above
	// is only a fast path; this is what actually guards against a
	// concurrent rental of the same motorcycle.
	if err := s.motoRepo.MarkRented(ctx, motorcycleID); err != nil {
		if errors.Is(err, repository.ErrNotAvailable) {
			return nil, ErrMotorcycleUnavailable
		}
		return nil, err
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		// Compensate so a failed insert does not strand the motorcycle.
		if relErr := s.motoRepo.Release(ctx, motorcycleID); relErr != nil {
			logger.Error("Failed to release motorcycle after create failure",
				"motorcycle_id", motorcycleID, "error", relErr)
		}
		return nil, err
	}

	if err := s.appendHistory(ctx, rental); err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendRentalConfirmation(ctx, driver.Email, driver.Name, moto.Model,
		rental.ExpectedEndDate, rental.TotalPriceCents)

	return rental, nil
}

func (s *rentalService) MarkCompleted(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("rental %s: %w", rentalID, err)
	}

	now := time.Now().UTC()
	rt.ReturnedOn = &now
	if err := s.transition(ctx, rt, domain.RentalStatusCompleted); err != nil {
		return nil, err
	}

	driver, err := s.driverRepo.GetByID(ctx, rt.DriverID)
	if err == nil {
		moto, _ := s.motoRepo.GetByID(ctx, rt.MotorcycleID)
		model := ""
		if moto != nil {
			model = moto.Model
		}
		_ = s.emailSvc.SendRentalSettled(ctx, driver.Email, driver.Name, model, rt.TotalPriceCents)
	}

	return rt, nil
}

func (s *rentalService) CancelRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("rental %s: %w", rentalID, err)
	}
	if err := s.transition(ctx, rt, domain.RentalStatusCancelled); err != nil {
		return nil, err
	}
	return rt, nil
}

// SimulateFinalPrice quotes the settlement for a hypothetical return date.
// It reads the live plan, not the rental's snapshot: settlement re-prices
// against current plan terms. Nothing is mutated.
func (s *rentalService) SimulateFinalPrice(ctx context.Context, rentalID uuid.UUID, returnDate time.Time) (*pricing.Settlement, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("rental %s: %w", rentalID, err)
	}
	if _, err := s.motoRepo.GetByID(ctx, rt.MotorcycleID); err != nil {
		return nil, fmt.Errorf("motorcycle %s: %w", rt.MotorcycleID, err)
	}
	plan, err := s.planRepo.GetByID(ctx, rt.PlanID)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", rt.PlanID, err)
	}

	settlement := pricing.Settle(rt.StartDate, plan, returnDate)
	return &settlement, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) GetRentalHistory(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalStatusHistory, error) {
	if _, err := s.rentalRepo.GetByID(ctx, rentalID); err != nil {
		return nil, fmt.Errorf("rental %s: %w", rentalID, err)
	}
	return s.historyRepo.ListByRental(ctx, rentalID)
}

// DeleteRentalsByDriver is the administrative cascade used when a driver
// account is removed. Any motorcycle still held by an open rental is
// released before the rows go away; history rows are kept.
func (s *rentalService) DeleteRentalsByDriver(ctx context.Context, driverID uuid.UUID) error {
	rentals, err := s.rentalRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return err
	}
	if len(rentals) == 0 {
		return fmt.Errorf("rentals for driver %s: %w", driverID, repository.ErrNotFound)
	}

	for _, rt := range rentals {
		if rt.Status.IsTerminal() {
			continue
		}
		if err := s.motoRepo.Release(ctx, rt.MotorcycleID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
	}

	deleted, err := s.rentalRepo.DeleteByDriver(ctx, driverID)
	if err != nil {
		return err
	}
	logger.Info("Deleted rentals for driver", "driver_id", driverID, "count", deleted)
	return nil
}

// transition applies one step of the status machine, persists it, releases
// the motorcycle on terminal states and appends the audit entry.
func (s *rentalService) transition(ctx context.Context, rt *domain.Rental, next domain.RentalStatus) error {
	if !rt.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rt.Status, next)
	}
	rt.Status = next
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return err
	}

	if next.IsTerminal() {
		if err := s.motoRepo.Release(ctx, rt.MotorcycleID); err != nil {
			logger.Error("Failed to release motorcycle on terminal transition",
				"rental_id", rt.ID, "motorcycle_id", rt.MotorcycleID, "error", err)
		}
	}

	return s.appendHistory(ctx, rt)
}

func (s *rentalService) appendHistory(ctx context.Context, rt *domain.Rental) error {
	return s.historyRepo.Append(ctx, &domain.RentalStatusHistory{
		RentalID:        rt.ID,
		Status:          rt.Status,
		StatusChangedOn: time.Now().UTC(),
	})
}
