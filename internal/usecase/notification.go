package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
)

// CreateNotificationInput enumerates the fields of createNotification. An
// empty Type defaults to system; unrecognized values pass through as-is.
type CreateNotificationInput struct {
	CustomerEmail string
	Title         string
	Message       string
	Type          model.NotificationType
}

// NotificationUseCase owns the per-customer notification feed.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	limit         int
}

// NewNotificationUseCase constructs NotificationUseCase. The limit caps how
// many notifications ListByCustomer returns.
func NewNotificationUseCase(notifications repository.NotificationRepository, limit int) *NotificationUseCase {
	if limit <= 0 {
		limit = 20
	}
	return &NotificationUseCase{notifications: notifications, limit: limit}
}

// Create persists an unread notification.
func (u *NotificationUseCase) Create(ctx context.Context, input CreateNotificationInput) (*model.Notification, error) {
	if strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer email is required", domainErrors.ErrValidation)
	}

	typ := input.Type
	if typ == "" {
		typ = model.NotificationTypeSystem
	}

	return u.notifications.Create(ctx, model.Notification{
		CustomerEmail: input.CustomerEmail,
		Title:         input.Title,
		Message:       input.Message,
		Type:          typ,
	})
}

// ListByCustomer returns the newest notifications for the customer, capped
// at the configured limit.
func (u *NotificationUseCase) ListByCustomer(ctx context.Context, email string) ([]model.Notification, error) {
	return u.notifications.ListByCustomer(ctx, email, u.limit)
}

// Acknowledge marks the notification read. Repeat calls succeed and change
// nothing.
func (u *NotificationUseCase) Acknowledge(ctx context.Context, id int64) error {
	return u.notifications.Acknowledge(ctx, id)
}
