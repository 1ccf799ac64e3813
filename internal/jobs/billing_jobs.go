package jobs

import (
	"context"
	"time"

	"fleetbill-backend/internal/billing"
	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/logger"
)

// SendPendingBillReminders emails each driver who has completed trips
// still waiting for a bill.
func (jr *JobRunner) SendPendingBillReminders() {
	jr.runWithRecovery("SendPendingBillReminders", func() {
		ctx := context.Background()

		drivers, err := jr.store.ListByRole(ctx, domain.UserRoleDriver)
		if err != nil {
			logger.Error("Failed to list drivers", "error", err)
			return
		}

		reminded := 0
		for i := range drivers {
			driver := &drivers[i]
			actor := billing.ActorForUser(driver)

			pending, _, err := jr.services.Billing.Ledger(ctx, actor, billing.LedgerFilter{})
			if err != nil {
				logger.Error("Failed to project ledger for driver", "driver_id", driver.ID, "error", err)
				continue
			}
			if len(pending) == 0 {
				continue
			}

			if err := jr.services.Email.SendPendingBillReminder(ctx, driver.Email, driver.Name, len(pending)); err != nil {
				logger.Warn("Failed to send pending bill reminder", "driver_id", driver.ID, "error", err)
				continue
			}
			reminded++
		}

		logger.Info("Pending bill reminders sent", "drivers", reminded)
	})
}

// SendDailyBillingSummary emails finance staff a count and total of the
// bills generated in the last 24 hours.
func (jr *JobRunner) SendDailyBillingSummary() {
	jr.runWithRecovery("SendDailyBillingSummary", func() {
		ctx := context.Background()

		bills, err := jr.store.BillingRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list bills", "error", err)
			return
		}

		cutoff := time.Now().Add(-24 * time.Hour)
		count := 0
		total := 0.0
		for i := range bills {
			if bills[i].CreatedAt.Before(cutoff) {
				continue
			}
			count++
			total += bills[i].TotalAmount
		}

		if count == 0 {
			logger.Info("No bills generated in the last day, skipping summary")
			return
		}

		for _, role := range []domain.UserRole{domain.UserRoleFinance, domain.UserRoleAdmin} {
			staff, err := jr.store.ListByRole(ctx, role)
			if err != nil {
				logger.Error("Failed to list staff for billing summary", "role", role, "error", err)
				continue
			}
			for i := range staff {
				if err := jr.services.Email.SendDailyBillingSummary(ctx, staff[i].Email, staff[i].Name, count, total); err != nil {
					logger.Warn("Failed to send billing summary", "user_id", staff[i].ID, "error", err)
				}
			}
		}

		logger.Info("Daily billing summary sent", "bills", count, "total", total)
	})
}
