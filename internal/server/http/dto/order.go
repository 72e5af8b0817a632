package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order as submitted and echoed back.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// PlaceOrderRequest enumerates every field placeOrder recognizes. The legacy
// storefront keyed the customer by userEmail; both spellings resolve to the
// same order store.
type PlaceOrderRequest struct {
	CustomerEmail   string          `json:"customerEmail"`
	UserEmail       string          `json:"userEmail"`
	CustomerName    string          `json:"customerName"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Mobile          string          `json:"mobile"`
	PaymentMethod   string          `json:"paymentMethod"`
}

// Email resolves the customerEmail/userEmail alias pair.
func (r PlaceOrderRequest) Email() string {
	if r.CustomerEmail != "" {
		return r.CustomerEmail
	}
	return r.UserEmail
}

// PlaceOrderResponse confirms a placed order.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// OrderResponse is the wire shape of a stored order.
type OrderResponse struct {
	ID              int64           `json:"id"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerName    string          `json:"customerName,omitempty"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	Mobile          string          `json:"mobile,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
