package domain

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// allowedTransitions is the full status machine. Completed and Cancelled are
// terminal. Pending may settle directly to Completed (return before pickup).
var allowedTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:   {RentalStatusActive, RentalStatusCompleted, RentalStatusCancelled},
	RentalStatusActive:    {RentalStatusCompleted, RentalStatusCancelled},
	RentalStatusCompleted: {},
	RentalStatusCancelled: {},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s RentalStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

type Rental struct {
	ID           uuid.UUID `json:"id"`
	MotorcycleID uuid.UUID `json:"motorcycle_id"`
	DriverID     uuid.UUID `json:"driver_id"`
	PlanID       uuid.UUID `json:"plan_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	// ExpectedEndDate is the contractual return date, start_date plus the
	// plan duration, fixed at creation and never recomputed from the plan.
	ExpectedEndDate time.Time `json:"expected_end_date"`
	// Price snapshot fields — captured from the plan at rental creation time.
	// The creation-time total uses these snapshots, not live plan prices.
	DailyRateCents  int64        `json:"daily_rate_cents"`
	DurationDays    int          `json:"duration_days"`
	TotalPriceCents int64        `json:"total_price_cents"`
	Status          RentalStatus `json:"status"`
	ReturnedOn      *time.Time   `json:"returned_on,omitempty"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`
}
