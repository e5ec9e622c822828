package jobs

import (
	"context"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
)

// SendPendingApprovalReminders emails each owner who has bookings still
// waiting for a decision. One email per owner, with the pending count.
func (jr *JobRunner) SendPendingApprovalReminders() {
	jr.runWithRecovery("SendPendingApprovalReminders", func() {
		ctx := context.Background()

		waiting, err := jr.bookingRepo.ListWaitingWithRelations(ctx)
		if err != nil {
			logger.Error("Failed to list waiting bookings", "error", err)
			metrics.ReminderRuns.WithLabelValues("error").Inc()
			return
		}

		type ownerPending struct {
			owner *domain.User
			count int
		}
		pendingByOwner := make(map[int64]*ownerPending)
		for i := range waiting {
			owner := waiting[i].Item.Owner
			if p, ok := pendingByOwner[owner.ID]; ok {
				p.count++
			} else {
				pendingByOwner[owner.ID] = &ownerPending{owner: owner, count: 1}
			}
		}

		sent := 0
		for _, p := range pendingByOwner {
			if err := jr.emailSvc.SendPendingApprovalReminder(ctx, p.owner.Email, p.count); err != nil {
				logger.Warn("Failed to send pending approval reminder", "owner_id", p.owner.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Pending approval reminders sent", "owners_notified", sent, "waiting_bookings", len(waiting))
		metrics.ReminderRuns.WithLabelValues("ok").Inc()
	})
}
