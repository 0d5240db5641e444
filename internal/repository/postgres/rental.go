package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, motorcycle_id, driver_id, plan_id, start_date, end_date, expected_end_date,
	daily_rate_cents, duration_days, total_price_cents, status, returned_on, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	now := time.Now().UTC()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	query := `INSERT INTO rentals (id, motorcycle_id, driver_id, plan_id, start_date, end_date, expected_end_date,
	          daily_rate_cents, duration_days, total_price_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		rt.ID, rt.MotorcycleID, rt.DriverID, rt.PlanID, rt.StartDate, rt.EndDate, rt.ExpectedEndDate,
		rt.DailyRateCents, rt.DurationDays, rt.TotalPriceCents, rt.Status, rt.CreatedOn, rt.UpdatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.MotorcycleID, &rt.DriverID, &rt.PlanID, &rt.StartDate, &rt.EndDate, &rt.ExpectedEndDate,
		&rt.DailyRateCents, &rt.DurationDays, &rt.TotalPriceCents, &rt.Status, &rt.ReturnedOn, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	rt.UpdatedOn = time.Now().UTC()
	query := `UPDATE rentals SET status = $1, returned_on = $2, updated_on = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, rt.Status, rt.ReturnedOn, rt.UpdatedOn, rt.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE driver_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.MotorcycleID, &rt.DriverID, &rt.PlanID, &rt.StartDate, &rt.EndDate, &rt.ExpectedEndDate,
			&rt.DailyRateCents, &rt.DurationDays, &rt.TotalPriceCents, &rt.Status, &rt.ReturnedOn, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) DeleteByDriver(ctx context.Context, driverID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE driver_id = $1`, driverID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
