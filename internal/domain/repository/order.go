package repository

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order with status Pending and returns it with the
	// store-assigned ID and CreatedAt filled in.
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	ListByCustomer(ctx context.Context, email string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// SetStatus overwrites the status unconditionally. There is no enforced
	// transition graph.
	SetStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}
