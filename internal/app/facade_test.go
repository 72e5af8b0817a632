package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	testhelpers "github.com/freshdairy/freshdairy/internal/test"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

type facadeFixture struct {
	facade        *DairyFacade
	customers     *testhelpers.CustomerRepositoryStub
	orders        *testhelpers.OrderRepositoryStub
	notifications *testhelpers.NotificationRepositoryStub
	contacts      *testhelpers.ContactRepositoryStub
	products      *testhelpers.ProductRepositoryStub
}

func newFacade() facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	customers := testhelpers.NewCustomerRepositoryStub()
	strategy := testhelpers.TokenStrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(customers, testhelpers.HasherStub{}, strategy)

	orders := &testhelpers.OrderRepositoryStub{}
	notifications := &testhelpers.NotificationRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orders, notifications, logger)
	notificationUC := usecase.NewNotificationUseCase(notifications, 20)

	contacts := &testhelpers.ContactRepositoryStub{}
	adminUC := usecase.NewAdminUseCase(orders, customers, contacts, usecase.AdminOptions{})
	contactUC := usecase.NewContactUseCase(contacts)

	products := &testhelpers.ProductRepositoryStub{Products: []model.Product{
		{ID: 1, Name: "Fresh Milk", Price: decimal.NewFromFloat(3.5), Available: true},
	}}
	catalogUC := usecase.NewCatalogUseCase(products)

	facade := NewDairyFacade(authUC, orderUC, notificationUC, adminUC, contactUC, catalogUC)
	return facadeFixture{
		facade:        facade,
		customers:     customers,
		orders:        orders,
		notifications: notifications,
		contacts:      contacts,
		products:      products,
	}
}

func TestDairyFacadeAuth(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	customer, token, err := fix.facade.Register(ctx, "Alice", "alice@freshdairy.test", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if customer.ID == 0 || token != "token" {
		t.Fatalf("unexpected register result %+v %q", customer, token)
	}

	if _, _, err := fix.facade.Authenticate(ctx, "alice@freshdairy.test", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, err := fix.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("unexpected customer id %d", id)
	}
}

func TestDairyFacadeOrderFlow(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	order, err := fix.facade.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerEmail: "bob@freshdairy.test",
		Items:         []model.OrderItem{{Name: "Curd", Price: decimal.NewFromInt(2), Quantity: 1}},
		TotalAmount:   decimal.NewFromInt(2),
	})
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if order.PaymentMethod != usecase.DefaultPaymentMethod {
		t.Fatalf("expected default payment method, got %q", order.PaymentMethod)
	}

	// The confirmation lands on the notification feed.
	feed, err := fix.facade.Notifications(ctx, "bob@freshdairy.test")
	if err != nil {
		t.Fatalf("notifications returned error: %v", err)
	}
	if len(feed) != 1 || feed[0].Type != model.NotificationTypeOrder {
		t.Fatalf("unexpected feed %+v", feed)
	}

	if err := fix.facade.AcknowledgeNotification(ctx, feed[0].ID); err != nil {
		t.Fatalf("acknowledge returned error: %v", err)
	}

	orders, err := fix.facade.CustomerOrders(ctx, "bob@freshdairy.test")
	if err != nil {
		t.Fatalf("customer orders returned error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestDairyFacadeAdminFlow(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	order, err := fix.facade.PlaceOrder(ctx, usecase.PlaceOrderInput{
		CustomerEmail: "carol@freshdairy.test",
		Items:         []model.OrderItem{{Name: "Paneer", Price: decimal.NewFromInt(6), Quantity: 1}},
		TotalAmount:   decimal.NewFromInt(6),
	})
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}

	views, err := fix.facade.AdminOrders(ctx)
	if err != nil {
		t.Fatalf("admin orders returned error: %v", err)
	}
	if len(views) != 1 || views[0].DisplayID != "FD000001" {
		t.Fatalf("unexpected views %+v", views)
	}

	updated, err := fix.facade.SetOrderStatus(ctx, order.ID, model.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if updated.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected status %q", updated.Status)
	}

	if _, err := fix.facade.SetOrderStatus(ctx, 404, model.OrderStatusConfirmed); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	statuses := fix.facade.OrderStatuses()
	if len(statuses) != len(model.DefaultOrderStatuses()) {
		t.Fatalf("unexpected statuses %v", statuses)
	}

	stats, err := fix.facade.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("dashboard stats returned error: %v", err)
	}
	if stats.Orders != 1 || !stats.Revenue.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestDairyFacadeContactAndCatalog(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	if _, err := fix.facade.SubmitContact(ctx, "Laura", "laura@freshdairy.test", "hi"); err != nil {
		t.Fatalf("submit contact returned error: %v", err)
	}

	messages, err := fix.facade.Messages(ctx)
	if err != nil {
		t.Fatalf("messages returned error: %v", err)
	}
	if len(messages) != 1 || messages[0].Name != "Laura" {
		t.Fatalf("unexpected messages %+v", messages)
	}

	products, err := fix.facade.Products(ctx)
	if err != nil {
		t.Fatalf("products returned error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Fresh Milk" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestDairyFacadeCustomersHidePasswords(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	if _, _, err := fix.facade.Register(ctx, "Dave", "dave@freshdairy.test", "secret"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	customers, err := fix.facade.Customers(ctx)
	if err != nil {
		t.Fatalf("customers returned error: %v", err)
	}
	if len(customers) != 1 || customers[0].PasswordHash != "" {
		t.Fatalf("unexpected customers %+v", customers)
	}
}
