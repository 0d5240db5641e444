package domain

import "github.com/google/uuid"

// RentalPlan is a rental product: a fixed duration at a daily rate.
// Plans are read-only inputs to pricing; edits to a plan never rewrite
// rentals created under its earlier terms.
type RentalPlan struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DurationDays   int       `json:"duration_days"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	IsActive       bool      `json:"is_active"`
}
