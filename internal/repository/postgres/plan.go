package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type planRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RentalPlan, error) {
	p := &domain.RentalPlan{}
	query := `SELECT id, name, duration_days, daily_rate_cents, is_active FROM rental_plans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.DurationDays, &p.DailyRateCents, &p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *planRepository) ListActive(ctx context.Context) ([]domain.RentalPlan, error) {
	query := `SELECT id, name, duration_days, daily_rate_cents, is_active FROM rental_plans
	          WHERE is_active = TRUE ORDER BY duration_days`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.RentalPlan
	for rows.Next() {
		var p domain.RentalPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.DurationDays, &p.DailyRateCents, &p.IsActive); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
