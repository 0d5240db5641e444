package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
)

// ActivateDueRentals moves PENDING rentals whose start date has arrived to
// ACTIVE and writes the matching history rows.
func (jr *JobRunner) ActivateDueRentals() {
	jr.runWithRecovery("ActivateDueRentals", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		query := `
			UPDATE rentals
			SET status = 'ACTIVE',
			    updated_on = NOW()
			WHERE status = 'PENDING'
			  AND start_date <= $1
			RETURNING id
		`

		rows, err := jr.db.QueryContext(ctx, query, now)
		if err != nil {
			logger.Error("Failed to activate due rentals", "error", err)
			return
		}
		defer rows.Close()

		var activated []uuid.UUID
		for rows.Next() {
			var id uuid.UUID
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan activated rental", "error", err)
				continue
			}
			activated = append(activated, id)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating activated rentals", "error", err)
			return
		}

		for _, id := range activated {
			entry := &domain.RentalStatusHistory{
				RentalID:        id,
				Status:          domain.RentalStatusActive,
				StatusChangedOn: now,
			}
			if err := jr.store.StatusHistoryRepository.Append(ctx, entry); err != nil {
				logger.Error("Failed to append activation history", "rental_id", id, "error", err)
			}
		}

		logger.Info("Activated due rentals", "count", len(activated))
	})
}

// SweepLateReturns reports ACTIVE rentals past their expected end date. The
// late surcharge itself accrues at settlement time; this job only surfaces
// the backlog.
func (jr *JobRunner) SweepLateReturns() {
	jr.runWithRecovery("SweepLateReturns", func() {
		ctx := context.Background()

		query := `
			SELECT id, driver_id, motorcycle_id, expected_end_date
			FROM rentals
			WHERE status = 'ACTIVE'
			  AND expected_end_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to sweep late returns", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, driverID, motoID uuid.UUID
			var expected time.Time
			if err := rows.Scan(&id, &driverID, &motoID, &expected); err != nil {
				logger.Error("Failed to scan late rental", "error", err)
				continue
			}
			count++
			logger.Warn("Rental past expected end date",
				"rental_id", id, "driver_id", driverID,
				"motorcycle_id", motoID, "expected_end_date", expected.Format("2006-01-02"))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating late rentals", "error", err)
			return
		}

		logger.Info("Swept late returns", "count", count)
	})
}
