package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	testhelpers "github.com/freshdairy/freshdairy/internal/test"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		CustomerEmail: "dave@freshdairy.test",
		CustomerName:  "Dave",
		Items: []model.OrderItem{
			{Name: "Fresh Milk", Price: decimal.NewFromFloat(3.5), Quantity: 2},
		},
		TotalAmount:     decimal.NewFromFloat(7.0),
		DeliveryAddress: "12 Dairy Lane",
		Mobile:          "5551234",
	}
}

func TestOrderUseCasePlace(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	notifications := &testhelpers.NotificationRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, notifications, discardLogger())

	order, err := uc.Place(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("expected order id to be assigned")
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.PaymentMethod != usecase.DefaultPaymentMethod {
		t.Fatalf("expected default payment method, got %q", order.PaymentMethod)
	}
	if len(notifications.Notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications.Notifications))
	}
	n := notifications.Notifications[0]
	if n.CustomerEmail != order.CustomerEmail {
		t.Fatalf("notification addressed to %q", n.CustomerEmail)
	}
	if n.Type != model.NotificationTypeOrder {
		t.Fatalf("unexpected notification type %q", n.Type)
	}
	if want := fmt.Sprintf("Your order #%d has been confirmed. Thank you!", order.ID); n.Message != want {
		t.Fatalf("unexpected notification message %q", n.Message)
	}
	if n.IsRead {
		t.Fatalf("fresh notification must be unread")
	}
}

func TestOrderUseCasePlaceKeepsPaymentMethod(t *testing.T) {
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.NotificationRepositoryStub{}, discardLogger())

	input := sampleInput()
	input.PaymentMethod = "UPI"
	order, err := uc.Place(context.Background(), input)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.PaymentMethod != "UPI" {
		t.Fatalf("expected payment method to survive, got %q", order.PaymentMethod)
	}
}

func TestOrderUseCasePlaceValidation(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, &testhelpers.NotificationRepositoryStub{}, discardLogger())

	missingEmail := sampleInput()
	missingEmail.CustomerEmail = "  "
	if _, err := uc.Place(context.Background(), missingEmail); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for missing email, got %v", err)
	}

	noItems := sampleInput()
	noItems.Items = nil
	if _, err := uc.Place(context.Background(), noItems); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for empty items, got %v", err)
	}

	negative := sampleInput()
	negative.TotalAmount = decimal.NewFromInt(-1)
	if _, err := uc.Place(context.Background(), negative); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for negative total, got %v", err)
	}

	if len(orders.Created) != 0 {
		t.Fatalf("rejected input must not reach the repository, got %d writes", len(orders.Created))
	}
}

func TestOrderUseCasePlaceWritesOrderBeforeNotification(t *testing.T) {
	var sequence []string
	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(ctx context.Context, order model.Order) (*model.Order, error) {
			sequence = append(sequence, "order")
			order.ID = 7
			return &order, nil
		},
	}
	notifications := &testhelpers.NotificationRepositoryStub{
		CreateFn: func(ctx context.Context, n model.Notification) (*model.Notification, error) {
			sequence = append(sequence, "notification")
			return &n, nil
		},
	}
	uc := usecase.NewOrderUseCase(orders, notifications, discardLogger())

	if _, err := uc.Place(context.Background(), sampleInput()); err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if len(sequence) != 2 || sequence[0] != "order" || sequence[1] != "notification" {
		t.Fatalf("unexpected write order %v", sequence)
	}
}

func TestOrderUseCasePlaceOrderFailureSkipsNotification(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(ctx context.Context, order model.Order) (*model.Order, error) {
			return nil, errors.New("storage down")
		},
	}
	notifications := &testhelpers.NotificationRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, notifications, discardLogger())

	if _, err := uc.Place(context.Background(), sampleInput()); err == nil {
		t.Fatalf("expected order failure to surface")
	}
	if len(notifications.Notifications) != 0 {
		t.Fatalf("no notification may be written when the order write fails")
	}
}

func TestOrderUseCasePlaceSurvivesNotificationFailure(t *testing.T) {
	notifications := &testhelpers.NotificationRepositoryStub{
		CreateFn: func(ctx context.Context, n model.Notification) (*model.Notification, error) {
			return nil, errors.New("feed down")
		},
	}
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, notifications, discardLogger())

	order, err := uc.Place(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("order must stand when only the notification fails, got %v", err)
	}
	if order == nil || order.ID == 0 {
		t.Fatalf("expected persisted order, got %+v", order)
	}
}

func TestOrderUseCaseListByCustomer(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, &testhelpers.NotificationRepositoryStub{}, discardLogger())

	ctx := context.Background()
	if _, err := uc.Place(ctx, sampleInput()); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	other := sampleInput()
	other.CustomerEmail = "erin@freshdairy.test"
	if _, err := uc.Place(ctx, other); err != nil {
		t.Fatalf("place failed: %v", err)
	}

	list, err := uc.ListByCustomer(ctx, "dave@freshdairy.test")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 1 || list[0].CustomerEmail != "dave@freshdairy.test" {
		t.Fatalf("unexpected orders %+v", list)
	}
}
