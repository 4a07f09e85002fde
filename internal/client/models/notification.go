package models

// NotificationType classifies an alert. Only NotificationUrgent changes
// presentation; the backend also sends "warning" and "info".
type NotificationType string

const (
	NotificationUrgent NotificationType = "urgent"
	NotificationInfo   NotificationType = "info"
)

// Notification is one pending alert from /api/notifications.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Message string           `json:"msg"`
}

// Urgent reports whether the alert should be shown with urgent severity.
func (n Notification) Urgent() bool {
	return n.Type == NotificationUrgent
}
