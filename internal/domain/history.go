package domain

import (
	"time"

	"github.com/google/uuid"
)

// RentalStatusHistory is one row of the append-only status audit trail.
// Rows are never updated or deleted; duplicate statuses for the same rental
// are allowed.
type RentalStatusHistory struct {
	ID              int64        `json:"id"`
	RentalID        uuid.UUID    `json:"rental_id"`
	Status          RentalStatus `json:"status"`
	StatusChangedOn time.Time    `json:"status_changed_on"`
	CreatedOn       time.Time    `json:"created_on"`
}
