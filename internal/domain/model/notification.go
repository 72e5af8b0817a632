package model

import "time"

// NotificationType categorizes a notification for the client renderer.
// The set is open: unrecognized values pass through untouched.
type NotificationType string

const (
	NotificationTypeSystem NotificationType = "system"
	NotificationTypeOrder  NotificationType = "order"
	NotificationTypeCart   NotificationType = "cart"
	NotificationTypeLogin  NotificationType = "login"
)

// Notification is a short-lived informational event addressed to one
// customer. Rows are append-only; IsRead is the only mutable field and it
// never flips back to false.
type Notification struct {
	ID            int64
	CustomerEmail string
	Title         string
	Message       string
	Type          NotificationType
	IsRead        bool
	CreatedAt     time.Time
}
