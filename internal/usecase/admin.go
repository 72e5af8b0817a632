package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
)

// DisplayOrder decorates an order with the human-facing display id shown in
// the admin console. The display id is presentation only; writes keep
// addressing orders by the storage id.
type DisplayOrder struct {
	model.Order
	DisplayID string
}

// AdminOptions tunes the read-model projection.
type AdminOptions struct {
	DisplayIDPrefix string
	DisplayIDWidth  int
	Statuses        []model.OrderStatus
}

// AdminUseCase projects orders, customers and contact messages into the
// admin console views and owns the status write path.
type AdminUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	contacts  repository.ContactRepository
	prefix    string
	width     int
	statuses  []model.OrderStatus
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(orders repository.OrderRepository, customers repository.CustomerRepository, contacts repository.ContactRepository, opts AdminOptions) *AdminUseCase {
	prefix := opts.DisplayIDPrefix
	if prefix == "" {
		prefix = "FD"
	}
	width := opts.DisplayIDWidth
	if width <= 0 {
		width = 6
	}
	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = model.DefaultOrderStatuses()
	}
	return &AdminUseCase{
		orders:    orders,
		customers: customers,
		contacts:  contacts,
		prefix:    prefix,
		width:     width,
		statuses:  statuses,
	}
}

// BuildOrderView derives the display id deterministically from the storage
// id: fixed prefix, zero-padded to the configured width. Ids wider than the
// minimum keep all their digits, so distinct storage ids never collide.
func (u *AdminUseCase) BuildOrderView(order model.Order) DisplayOrder {
	return DisplayOrder{
		Order:     order,
		DisplayID: fmt.Sprintf("%s%0*d", u.prefix, u.width, order.ID),
	}
}

// ListOrders returns every order, most recent first, decorated for display.
func (u *AdminUseCase) ListOrders(ctx context.Context) ([]DisplayOrder, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]DisplayOrder, 0, len(orders))
	for _, order := range orders {
		views = append(views, u.BuildOrderView(order))
	}
	return views, nil
}

// SetStatus overwrites the order status. Any label is accepted and any
// status may follow any other; the store enforces no transition graph.
func (u *AdminUseCase) SetStatus(ctx context.Context, id int64, status model.OrderStatus) (*DisplayOrder, error) {
	if strings.TrimSpace(string(status)) == "" {
		return nil, fmt.Errorf("%w: status is required", domainErrors.ErrValidation)
	}
	order, err := u.orders.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	view := u.BuildOrderView(*order)
	return &view, nil
}

// ListCustomers projects the customer directory without password material.
func (u *AdminUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].PasswordHash = ""
	}
	return customers, nil
}

// ListMessages returns contact form submissions, most recent first.
func (u *AdminUseCase) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return u.contacts.List(ctx)
}

// DashboardStats aggregates the counters shown on the console landing page.
type DashboardStats struct {
	Orders        int
	PendingOrders int
	Customers     int
	Messages      int
	Revenue       decimal.Decimal
}

// Stats computes the dashboard counters. Revenue sums order totals over
// every non-cancelled order.
func (u *AdminUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := u.contacts.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Orders:    len(orders),
		Customers: len(customers),
		Messages:  len(messages),
		Revenue:   decimal.Zero,
	}
	for _, order := range orders {
		if order.Status == model.OrderStatusPending {
			stats.PendingOrders++
		}
		if order.Status != model.OrderStatusCancelled {
			stats.Revenue = stats.Revenue.Add(order.TotalAmount)
		}
	}
	return stats, nil
}

// Statuses returns the configured order status label set.
func (u *AdminUseCase) Statuses() []model.OrderStatus {
	return u.statuses
}
