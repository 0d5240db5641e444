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

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	query := `INSERT INTO motorcycles (id, year, model, plate, is_rented, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Year, m.Model, m.Plate, m.IsRented, time.Now().UTC())
	return err
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	query := `SELECT id, year, model, plate, is_rented, created_on FROM motorcycles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Year, &m.Model, &m.Plate, &m.IsRented, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.Motorcycle, error) {
	query := `SELECT id, year, model, plate, is_rented, created_on FROM motorcycles`
	if onlyAvailable {
		query += ` WHERE is_rented = FALSE`
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motos []domain.Motorcycle
	for rows.Next() {
		var m domain.Motorcycle
		if err := rows.Scan(&m.ID, &m.Year, &m.Model, &m.Plate, &m.IsRented, &m.CreatedOn); err != nil {
			return nil, err
		}
		motos = append(motos, m)
	}
	return motos, rows.Err()
}

// MarkRented claims the motorcycle with a conditional update so two
// concurrent rentals cannot both observe it as free.
func (r *motorcycleRepository) MarkRented(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE motorcycles SET is_rented = TRUE WHERE id = $1 AND is_rented = FALSE`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a missing motorcycle from one already rented.
		var exists bool
		err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM motorcycles WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrNotAvailable
	}
	return nil
}

func (r *motorcycleRepository) Release(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE motorcycles SET is_rented = FALSE WHERE id = $1`, id)
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
