package jobs

import (
	"context"
	"strings"

	"fleetrental-backend/internal/derive"
	"fleetrental-backend/internal/logger"
)

// SendDocumentExpiryReminders emails the fleet manager a digest of vehicle
// documents that are expired or about to expire.
func (jr *JobRunner) SendDocumentExpiryReminders() {
	jr.runWithRecovery("SendDocumentExpiryReminders", func() {
		jr.sendAlertDigest("expiry-", "Vehicle document expiry digest")
	})
}

// SendOverduePaymentReminders emails the fleet manager a digest of rentals
// that ended with a pending balance.
func (jr *JobRunner) SendOverduePaymentReminders() {
	jr.runWithRecovery("SendOverduePaymentReminders", func() {
		jr.sendAlertDigest("overdue-", "Overdue rental payments digest")
	})
}

func (jr *JobRunner) sendAlertDigest(idPrefix, subject string) {
	ctx := context.Background()

	alerts, _, err := jr.services.Alerts.Notifications(ctx)
	if err != nil {
		logger.Error("Failed to derive alerts", "error", err)
		return
	}

	matched := make([]derive.Alert, 0, len(alerts))
	for _, a := range alerts {
		if strings.HasPrefix(a.ID, idPrefix) {
			matched = append(matched, a)
		}
	}
	if len(matched) == 0 {
		logger.Info("No alerts to send", "subject", subject)
		return
	}

	if err := jr.services.Email.SendAlertDigest(ctx, subject, matched); err != nil {
		logger.Error("Failed to send alert digest",
			"subject", subject,
			"alert_count", len(matched),
			"error", err)
		return
	}
	logger.Info("Sent alert digest", "subject", subject, "alert_count", len(matched))
}
