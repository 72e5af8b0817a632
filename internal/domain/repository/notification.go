package repository

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// NotificationRepository describes persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) (*model.Notification, error)
	// ListByCustomer returns the most recent notifications first, at most
	// limit of them. Ties on creation time resolve to the latest insert.
	ListByCustomer(ctx context.Context, email string, limit int) ([]model.Notification, error)
	// Acknowledge flips IsRead to true. Acknowledging an already-read
	// notification succeeds and changes nothing.
	Acknowledge(ctx context.Context, id int64) error
}
