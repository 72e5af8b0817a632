package dto

import "time"

// CreateNotificationRequest describes the createNotification payload.
type CreateNotificationRequest struct {
	CustomerEmail string `json:"customer_email"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Type          string `json:"type"`
}

// CreateNotificationResponse confirms a stored notification.
type CreateNotificationResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// NotificationResponse is the wire shape of a notification.
type NotificationResponse struct {
	ID            int64     `json:"id"`
	CustomerEmail string    `json:"customer_email"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}
