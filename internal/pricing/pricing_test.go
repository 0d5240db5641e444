package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBaseCost(t *testing.T) {
	assert.Equal(t, int64(70000), BaseCost(10000, 7))
	assert.Equal(t, int64(60000), BaseCost(4000, 15))
	assert.Equal(t, int64(0), BaseCost(0, 30))
}

func TestSettle_OnExpectedDate(t *testing.T) {
	plan := &domain.RentalPlan{DurationDays: 7, DailyRateCents: 10000}
	start := date(2024, time.January, 1)

	s := Settle(start, plan, date(2024, time.January, 8))

	assert.Equal(t, int64(70000), s.BaseCostCents)
	assert.Equal(t, 0, s.DaysEarly)
	assert.Equal(t, 0, s.DaysLate)
	assert.Equal(t, int64(70000), s.TotalCents)
}

func TestSettle_EarlyReturnSevenDayPlan(t *testing.T) {
	// 7-day plan at 100/day, returned 2 days early: 20% fine on unused days.
	plan := &domain.RentalPlan{DurationDays: 7, DailyRateCents: 10000}
	start := date(2024, time.January, 1)

	s := Settle(start, plan, date(2024, time.January, 6))

	assert.Equal(t, 2, s.DaysEarly)
	assert.Equal(t, int64(20000), s.UnpaidDaysCents)
	assert.Equal(t, int64(4000), s.FineCents)
	assert.Equal(t, int64(54000), s.TotalCents)
}

func TestSettle_EarlyReturnLongerPlan(t *testing.T) {
	// 15-day plan at 40/day, returned 3 days early: 40% fine on unused days.
	plan := &domain.RentalPlan{DurationDays: 15, DailyRateCents: 4000}
	start := date(2024, time.March, 1)

	s := Settle(start, plan, date(2024, time.March, 13))

	assert.Equal(t, 3, s.DaysEarly)
	assert.Equal(t, int64(12000), s.UnpaidDaysCents)
	assert.Equal(t, int64(4800), s.FineCents)
	assert.Equal(t, int64(52800), s.TotalCents)
}

func TestSettle_LateReturn(t *testing.T) {
	plan := &domain.RentalPlan{DurationDays: 7, DailyRateCents: 10000}
	start := date(2024, time.January, 1)

	s := Settle(start, plan, date(2024, time.January, 9))

	assert.Equal(t, 1, s.DaysLate)
	assert.Equal(t, int64(5000), s.SurchargeCents)
	assert.Equal(t, int64(75000), s.TotalCents)
}

func TestSettle_LateSurchargeGrowsPerDay(t *testing.T) {
	plan := &domain.RentalPlan{DurationDays: 7, DailyRateCents: 10000}
	start := date(2024, time.January, 1)

	prev := Settle(start, plan, date(2024, time.January, 8)).TotalCents
	for daysLate := 1; daysLate <= 5; daysLate++ {
		total := Settle(start, plan, date(2024, time.January, 8+daysLate)).TotalCents
		assert.Equal(t, prev+LateFeeCentsPerDay, total, "day %d", daysLate)
		prev = total
	}
}

func TestSettle_FinePercentByDuration(t *testing.T) {
	// One unused day each; only the 7-day plan gets the 20% rate.
	for _, tc := range []struct {
		days     int
		wantFine int64
	}{
		{7, 2000},
		{15, 4000},
		{30, 4000},
		{50, 4000},
	} {
		plan := &domain.RentalPlan{DurationDays: tc.days, DailyRateCents: 10000}
		start := date(2024, time.June, 1)
		s := Settle(start, plan, start.AddDate(0, 0, tc.days-1))
		assert.Equal(t, 1, s.DaysEarly, "duration %d", tc.days)
		assert.Equal(t, tc.wantFine, s.FineCents, "duration %d", tc.days)
	}
}

func TestSettle_IgnoresTimeOfDay(t *testing.T) {
	plan := &domain.RentalPlan{DurationDays: 7, DailyRateCents: 10000}
	start := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)
	ret := time.Date(2024, time.January, 8, 23, 59, 0, 0, time.UTC)

	s := Settle(start, plan, ret)
	assert.Equal(t, int64(70000), s.TotalCents)
}

func TestExpectedEndDate(t *testing.T) {
	got := ExpectedEndDate(time.Date(2024, time.January, 1, 14, 0, 0, 0, time.UTC), 7)
	assert.Equal(t, date(2024, time.January, 8), got)
}
