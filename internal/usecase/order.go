package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
)

// DefaultPaymentMethod substitutes an omitted payment method, matching what
// the storefront checkout preselects.
const DefaultPaymentMethod = "Cash on Delivery"

// PlaceOrderInput enumerates every field placeOrder recognizes. Optional
// fields default to empty; PaymentMethod defaults to DefaultPaymentMethod.
type PlaceOrderInput struct {
	CustomerEmail   string
	CustomerName    string
	Items           []model.OrderItem
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	Mobile          string
	PaymentMethod   string
}

// OrderUseCase accepts new orders and emits the confirmation notification.
type OrderUseCase struct {
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
	logger        *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, notifications repository.NotificationRepository, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, notifications: notifications, logger: logger}
}

// Place validates the input, persists the order with status Pending, and
// writes an order-type notification for the customer. The notification is
// written strictly after the order; if it fails the order still stands and
// the failure is only logged, since a lost notification is non-fatal while a
// lost order is not.
func (u *OrderUseCase) Place(ctx context.Context, input PlaceOrderInput) (*model.Order, error) {
	if strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer email is required", domainErrors.ErrValidation)
	}
	if err := ValidateOrderItems(input.Items); err != nil {
		return nil, err
	}
	if input.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", domainErrors.ErrValidation)
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	order, err := u.orders.Create(ctx, model.Order{
		CustomerEmail:   input.CustomerEmail,
		CustomerName:    input.CustomerName,
		Items:           input.Items,
		TotalAmount:     input.TotalAmount,
		DeliveryAddress: input.DeliveryAddress,
		Mobile:          input.Mobile,
		PaymentMethod:   paymentMethod,
	})
	if err != nil {
		return nil, err
	}

	if _, err := u.notifications.Create(ctx, model.Notification{
		CustomerEmail: order.CustomerEmail,
		Title:         "Order Placed Successfully!",
		Message:       fmt.Sprintf("Your order #%d has been confirmed. Thank you!", order.ID),
		Type:          model.NotificationTypeOrder,
	}); err != nil {
		u.logger.Error("order confirmation notification failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}

// Get fetches a single order.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.Get(ctx, id)
}

// ListByCustomer returns the customer's orders, most recent first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, email)
}
