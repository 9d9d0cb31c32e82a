package jobs

import (
	"context"
	"fmt"
	"time"

	"rentkart-backend/internal/logger"
)

// SendReturnReminders notifies renters whose rental window ends today
// and emails them a return notice.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		orders, err := jr.store.OrderRepository.ListEndingOn(ctx, today)
		if err != nil {
			logger.Error("Failed to list orders ending today", "error", err)
			return
		}

		reminded := 0
		for i := range orders {
			order := &orders[i]
			msg := fmt.Sprintf("Your rental in order %s ends today. Please arrange the return.", order.Reference)
			if err := jr.services.Notification.Notify(ctx, order.RenterID, msg); err != nil {
				logger.Error("Failed to create return reminder",
					"order_id", order.ID, "renter_id", order.RenterID, "error", err)
				continue
			}

			renter, err := jr.store.UserRepository.GetByID(ctx, order.RenterID)
			if err != nil {
				logger.Error("Failed to load renter for reminder email", "order_id", order.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, renter.Email, order); err != nil {
				logger.Error("Failed to send return reminder email", "order_id", order.ID, "error", err)
				continue
			}
			reminded++
		}

		logger.Info("Return reminders sent", "orders_ending_today", len(orders), "reminded", reminded)
	})
}

// PruneStaleCarts drops cart entries whose item has been deleted.
func (jr *JobRunner) PruneStaleCarts() {
	jr.runWithRecovery("PruneStaleCarts", func() {
		ctx := context.Background()

		pruned, err := jr.store.CartRepository.PruneMissingItems(ctx)
		if err != nil {
			logger.Error("Failed to prune stale cart entries", "error", err)
			return
		}

		logger.Info("Stale cart entries pruned", "entries_removed", pruned)
	})
}
