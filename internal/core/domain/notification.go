package domain

import "time"

// NotificationType is the severity of a user-visible message.
type NotificationType string

// Available notification types.
const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
)

// Notification is a user-visible message.
type Notification struct {
	Type    NotificationType
	Title   string
	Message string

	// Duration is the auto-dismiss delay. Zero means sticky.
	Duration time.Duration
}
