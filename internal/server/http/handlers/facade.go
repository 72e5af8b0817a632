package handlers

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

// AuthFacade describes customer directory capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.Customer, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error)
	ParseToken(token string) (int64, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error)
	CustomerOrders(ctx context.Context, email string) ([]model.Order, error)
}

// NotificationFacade provides the notification feed operations.
type NotificationFacade interface {
	CreateNotification(ctx context.Context, input usecase.CreateNotificationInput) (*model.Notification, error)
	Notifications(ctx context.Context, email string) ([]model.Notification, error)
	AcknowledgeNotification(ctx context.Context, id int64) error
}

// AdminFacade projects stored data into the admin console views.
type AdminFacade interface {
	AdminOrders(ctx context.Context) ([]usecase.DisplayOrder, error)
	SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*usecase.DisplayOrder, error)
	Customers(ctx context.Context) ([]model.Customer, error)
	Messages(ctx context.Context) ([]model.ContactMessage, error)
	OrderStatuses() []model.OrderStatus
	DashboardStats(ctx context.Context) (*usecase.DashboardStats, error)
}

// ContactFacade accepts contact form submissions.
type ContactFacade interface {
	SubmitContact(ctx context.Context, name, email, message string) (*model.ContactMessage, error)
}

// CatalogFacade serves the product listing.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// DairyFacade aggregates the full set of operations used across handlers.
type DairyFacade interface {
	AuthFacade
	OrderFacade
	NotificationFacade
	AdminFacade
	ContactFacade
	CatalogFacade
}
