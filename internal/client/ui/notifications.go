package ui

import (
	"context"
)

// CheckNotifications shows the pending alerts as toasts, once per session.
// A failed fetch leaves the session unmarked so the next activation retries.
func (c *Console) CheckNotifications(ctx context.Context) {
	if c.session.AlertsShown() {
		return
	}

	alerts, err := c.insights.Notifications(ctx)
	if err != nil {
		c.log.Warn(ctx, "fetch notifications", "error", err)
		return
	}
	if len(alerts) == 0 {
		return
	}

	c.session.SetAlertsShown()
	for _, a := range alerts {
		sev := SeverityInfo
		if a.Urgent() {
			sev = SeverityUrgent
		}
		c.toasts.NotifyAsset(sev, a.Message, a.ID)
	}
}
