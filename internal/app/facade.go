package app

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

// DairyFacade aggregates the use cases behind a single surface consumed by
// the HTTP handlers.
type DairyFacade struct {
	auth          *usecase.AuthUseCase
	orders        *usecase.OrderUseCase
	notifications *usecase.NotificationUseCase
	admin         *usecase.AdminUseCase
	contacts      *usecase.ContactUseCase
	catalog       *usecase.CatalogUseCase
}

// NewDairyFacade constructs the facade.
func NewDairyFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	notifications *usecase.NotificationUseCase,
	admin *usecase.AdminUseCase,
	contacts *usecase.ContactUseCase,
	catalog *usecase.CatalogUseCase,
) *DairyFacade {
	return &DairyFacade{
		auth:          auth,
		orders:        orders,
		notifications: notifications,
		admin:         admin,
		contacts:      contacts,
		catalog:       catalog,
	}
}

func (f *DairyFacade) Register(ctx context.Context, name, email, password string) (*model.Customer, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *DairyFacade) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *DairyFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *DairyFacade) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
	return f.orders.Place(ctx, input)
}

func (f *DairyFacade) CustomerOrders(ctx context.Context, email string) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, email)
}

func (f *DairyFacade) CreateNotification(ctx context.Context, input usecase.CreateNotificationInput) (*model.Notification, error) {
	return f.notifications.Create(ctx, input)
}

func (f *DairyFacade) Notifications(ctx context.Context, email string) ([]model.Notification, error) {
	return f.notifications.ListByCustomer(ctx, email)
}

func (f *DairyFacade) AcknowledgeNotification(ctx context.Context, id int64) error {
	return f.notifications.Acknowledge(ctx, id)
}

func (f *DairyFacade) AdminOrders(ctx context.Context) ([]usecase.DisplayOrder, error) {
	return f.admin.ListOrders(ctx)
}

func (f *DairyFacade) SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*usecase.DisplayOrder, error) {
	return f.admin.SetStatus(ctx, id, status)
}

func (f *DairyFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.admin.ListCustomers(ctx)
}

func (f *DairyFacade) Messages(ctx context.Context) ([]model.ContactMessage, error) {
	return f.admin.ListMessages(ctx)
}

func (f *DairyFacade) OrderStatuses() []model.OrderStatus {
	return f.admin.Statuses()
}

func (f *DairyFacade) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	return f.admin.Stats(ctx)
}

func (f *DairyFacade) SubmitContact(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	return f.contacts.Submit(ctx, name, email, message)
}

func (f *DairyFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListAvailable(ctx)
}
