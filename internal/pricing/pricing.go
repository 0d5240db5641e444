// Package pricing holds the rental cost formulas. Everything here is pure:
// callers resolve the plan and dates, pricing only does arithmetic.
package pricing

import (
	"time"

	"motorent-backend/internal/domain"
)

const (
	// LateFeeCentsPerDay is the flat surcharge for each day past the
	// expected end date.
	LateFeeCentsPerDay int64 = 5000

	// Early-return fine, as a percentage of the unused-days cost.
	// Seven-day plans get the reduced rate.
	shortPlanFinePercent int64 = 20
	defaultFinePercent   int64 = 40
	shortPlanDays              = 7
)

// Settlement is the price breakdown for returning a rental on a given date.
// All amounts are integer cents.
type Settlement struct {
	BaseCostCents   int64 `json:"base_cost_cents"`
	DaysEarly       int   `json:"days_early"`
	DaysLate        int   `json:"days_late"`
	UnpaidDaysCents int64 `json:"unpaid_days_cents"`
	FineCents       int64 `json:"fine_cents"`
	SurchargeCents  int64 `json:"surcharge_cents"`
	TotalCents      int64 `json:"total_cents"`
}

// BaseCost is the contractual price of a plan: daily rate times duration.
func BaseCost(dailyRateCents int64, durationDays int) int64 {
	return dailyRateCents * int64(durationDays)
}

// Settle computes the final price for returning on returnDate a rental that
// started on startDate under the given plan terms. The expected end date is
// derived fresh from the plan here: settlement re-prices against current
// plan terms, unlike creation which snapshots them.
func Settle(startDate time.Time, plan *domain.RentalPlan, returnDate time.Time) Settlement {
	expected := truncateToDay(startDate).AddDate(0, 0, plan.DurationDays)
	returned := truncateToDay(returnDate)

	s := Settlement{
		BaseCostCents: BaseCost(plan.DailyRateCents, plan.DurationDays),
	}

	switch {
	case returned.Before(expected):
		s.DaysEarly = daysBetween(returned, expected)
		s.UnpaidDaysCents = int64(s.DaysEarly) * plan.DailyRateCents
		s.FineCents = s.UnpaidDaysCents * finePercent(plan.DurationDays) / 100
		s.TotalCents = s.BaseCostCents - s.UnpaidDaysCents + s.FineCents
	case returned.After(expected):
		s.DaysLate = daysBetween(expected, returned)
		s.SurchargeCents = int64(s.DaysLate) * LateFeeCentsPerDay
		s.TotalCents = s.BaseCostCents + s.SurchargeCents
	default:
		s.TotalCents = s.BaseCostCents
	}
	return s
}

// ExpectedEndDate is the contractual return date for a rental starting on
// startDate under a plan of durationDays.
func ExpectedEndDate(startDate time.Time, durationDays int) time.Time {
	return truncateToDay(startDate).AddDate(0, 0, durationDays)
}

func finePercent(durationDays int) int64 {
	if durationDays == shortPlanDays {
		return shortPlanFinePercent
	}
	return defaultFinePercent
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
