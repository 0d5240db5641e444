package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type statusHistoryRepository struct {
	db *sql.DB
}

func NewStatusHistoryRepository(db *sql.DB) repository.StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

// Append inserts one audit row. There is deliberately no upsert or
// dedup: the table is insert-only.
func (r *statusHistoryRepository) Append(ctx context.Context, e *domain.RentalStatusHistory) error {
	e.CreatedOn = time.Now().UTC()
	query := `INSERT INTO rental_status_history (rental_id, status, status_changed_on, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.RentalID, e.Status, e.StatusChangedOn, e.CreatedOn).Scan(&e.ID)
}

func (r *statusHistoryRepository) ListByRental(ctx context.Context, rentalID uuid.UUID) ([]domain.RentalStatusHistory, error) {
	query := `SELECT id, rental_id, status, status_changed_on, created_on FROM rental_status_history
	          WHERE rental_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RentalStatusHistory
	for rows.Next() {
		var e domain.RentalStatusHistory
		if err := rows.Scan(&e.ID, &e.RentalID, &e.Status, &e.StatusChangedOn, &e.CreatedOn); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
