package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus labels the fulfillment stage of an order. The set is open:
// the store never validates transitions, any status may follow any status.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// DefaultOrderStatuses is the label set served to the admin console when no
// override is configured.
func DefaultOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// OrderItem is a single line of an order. Items are captured verbatim from
// the caller and never checked against the catalog.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is a customer's purchase request. ID and CreatedAt are assigned once
// by the store; Status is the only field that changes afterwards.
type Order struct {
	ID              int64
	CustomerEmail   string
	CustomerName    string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	Mobile          string
	PaymentMethod   string
	Status          OrderStatus
	CreatedAt       time.Time
}
