package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminOrderResponse is an order decorated with its display id for the
// admin console.
type AdminOrderResponse struct {
	OrderResponse
	DisplayID string `json:"displayId"`
}

// UpdateStatusRequest carries the new status label for an order.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CustomerSummary projects a directory entry for the admin console.
type CustomerSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse carries the dashboard counters.
type StatsResponse struct {
	TotalOrders    int             `json:"totalOrders"`
	PendingOrders  int             `json:"pendingOrders"`
	TotalCustomers int             `json:"totalCustomers"`
	TotalMessages  int             `json:"totalMessages"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
}

// MessageResponse is one contact form submission.
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
