package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

// AuthFacadeStub simulates customer directory interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.Customer, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.Customer, string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns customer and token for successful signup scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.Customer, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.Customer{ID: 1, Name: name, Email: email}, "token", nil
}

// Authenticate returns customer and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.Customer{ID: 1, Email: email}, "token", nil
}

// ParseToken returns stored identifier for an authenticated customer.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn func(context.Context, usecase.PlaceOrderInput) (*model.Order, error)
	ListFn  func(context.Context, string) ([]model.Order, error)
}

// PlaceOrder delegates to the override or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, input)
	}
	return &model.Order{
		ID:            1,
		CustomerEmail: input.CustomerEmail,
		CustomerName:  input.CustomerName,
		Items:         input.Items,
		TotalAmount:   input.TotalAmount,
		Status:        model.OrderStatusPending,
	}, nil
}

// CustomerOrders returns predefined orders for a customer.
func (s OrderFacadeStub) CustomerOrders(ctx context.Context, email string) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, email)
	}
	return []model.Order{{ID: 1, CustomerEmail: email, TotalAmount: decimal.NewFromInt(10)}}, nil
}

// NotificationFacadeStub simulates the notification feed.
type NotificationFacadeStub struct {
	CreateFn      func(context.Context, usecase.CreateNotificationInput) (*model.Notification, error)
	ListFn        func(context.Context, string) ([]model.Notification, error)
	AcknowledgeFn func(context.Context, int64) error

	mu    sync.Mutex
	Acked []int64
}

// CreateNotification returns a default stored notification.
func (s *NotificationFacadeStub) CreateNotification(ctx context.Context, input usecase.CreateNotificationInput) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Notification{
		ID:            1,
		CustomerEmail: input.CustomerEmail,
		Title:         input.Title,
		Message:       input.Message,
		Type:          input.Type,
		CreatedAt:     time.Unix(0, 0),
	}, nil
}

// Notifications returns the configured feed.
func (s *NotificationFacadeStub) Notifications(ctx context.Context, email string) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, email)
	}
	return []model.Notification{{ID: 1, CustomerEmail: email, Title: "hello"}}, nil
}

// AcknowledgeNotification records the acknowledged identifier.
func (s *NotificationFacadeStub) AcknowledgeNotification(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.Acked = append(s.Acked, id)
	s.mu.Unlock()
	if s.AcknowledgeFn != nil {
		return s.AcknowledgeFn(ctx, id)
	}
	return nil
}

// AckedIDs returns a snapshot of recorded acknowledgements.
func (s *NotificationFacadeStub) AckedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.Acked...)
}

// AdminFacadeStub serves the admin console views.
type AdminFacadeStub struct {
	OrdersFn    func(context.Context) ([]usecase.DisplayOrder, error)
	SetStatusFn func(context.Context, int64, model.OrderStatus) (*usecase.DisplayOrder, error)
	CustomersFn func(context.Context) ([]model.Customer, error)
	MessagesFn  func(context.Context) ([]model.ContactMessage, error)
	StatusesVal []model.OrderStatus
	StatsFn     func(context.Context) (*usecase.DashboardStats, error)
}

// AdminOrders returns configured display orders.
func (s AdminFacadeStub) AdminOrders(ctx context.Context) ([]usecase.DisplayOrder, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []usecase.DisplayOrder{{Order: model.Order{ID: 1}, DisplayID: "FD000001"}}, nil
}

// SetOrderStatus executes the configured handler.
func (s AdminFacadeStub) SetOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*usecase.DisplayOrder, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return &usecase.DisplayOrder{Order: model.Order{ID: id, Status: status}, DisplayID: "FD000001"}, nil
}

// Customers returns the configured directory.
func (s AdminFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: 1, Email: "a@b.c"}}, nil
}

// Messages returns stored contact messages.
func (s AdminFacadeStub) Messages(ctx context.Context) ([]model.ContactMessage, error) {
	if s.MessagesFn != nil {
		return s.MessagesFn(ctx)
	}
	return []model.ContactMessage{{ID: 1, Email: "a@b.c", Message: "hi"}}, nil
}

// DashboardStats returns the configured counters.
func (s AdminFacadeStub) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &usecase.DashboardStats{Orders: 1, Customers: 1, Revenue: decimal.NewFromInt(5)}, nil
}

// OrderStatuses returns the configured status vocabulary.
func (s AdminFacadeStub) OrderStatuses() []model.OrderStatus {
	if s.StatusesVal != nil {
		return s.StatusesVal
	}
	return model.DefaultOrderStatuses()
}

// ContactFacadeStub accepts contact form submissions.
type ContactFacadeStub struct {
	SubmitFn func(context.Context, string, string, string) (*model.ContactMessage, error)
}

// SubmitContact delegates to the override or echoes the submission.
func (s ContactFacadeStub) SubmitContact(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, name, email, message)
	}
	return &model.ContactMessage{ID: 1, Name: name, Email: email, Message: message}, nil
}

// CatalogFacadeStub serves a fixed product listing.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
}

// Products returns configured catalog entries.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Fresh Milk", Price: decimal.NewFromInt(3), Available: true}}, nil
}

// DairyFacadeStub aggregates facade dependencies for HTTP layer tests.
type DairyFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	*NotificationFacadeStub
	AdminFacadeStub
	ContactFacadeStub
	CatalogFacadeStub
}

// NewDairyFacadeStub builds a stub with every component initialized.
func NewDairyFacadeStub() *DairyFacadeStub {
	return &DairyFacadeStub{NotificationFacadeStub: &NotificationFacadeStub{}}
}
