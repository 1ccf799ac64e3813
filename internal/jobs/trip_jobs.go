package jobs

import (
	"context"

	"fleetbill-backend/internal/domain"
	"fleetbill-backend/internal/logger"
)

// ReportStaleActiveTrips emails administrators about trips that have been
// active longer than the configured threshold.
func (jr *JobRunner) ReportStaleActiveTrips() {
	jr.runWithRecovery("ReportStaleActiveTrips", func() {
		ctx := context.Background()

		stale, err := jr.store.ListActiveOlderThan(ctx, int32(jr.config.Scheduler.StaleTripHours))
		if err != nil {
			logger.Error("Failed to list stale active trips", "error", err)
			return
		}
		if len(stale) == 0 {
			logger.Info("No stale active trips found")
			return
		}

		logger.Warn("Stale active trips found", "count", len(stale), "threshold_hours", jr.config.Scheduler.StaleTripHours)

		for _, role := range []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleSuperAdmin} {
			admins, err := jr.store.ListByRole(ctx, role)
			if err != nil {
				logger.Error("Failed to list admins for stale trip report", "role", role, "error", err)
				continue
			}
			for i := range admins {
				if err := jr.services.Email.SendStaleTripReport(ctx, admins[i].Email, admins[i].Name, stale); err != nil {
					logger.Warn("Failed to send stale trip report", "user_id", admins[i].ID, "error", err)
				}
			}
		}
	})
}
