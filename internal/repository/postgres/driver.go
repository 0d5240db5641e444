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

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d *domain.DeliveryDriver) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	query := `INSERT INTO delivery_drivers (id, name, email, license_number, license_type, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Name, d.Email, d.LicenseNumber, d.LicenseType, time.Now().UTC())
	return err
}

func (r *driverRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryDriver, error) {
	d := &domain.DeliveryDriver{}
	query := `SELECT id, name, email, license_number, license_type, created_on FROM delivery_drivers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Email, &d.LicenseNumber, &d.LicenseType, &d.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
