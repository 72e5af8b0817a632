package repository

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// CustomerRepository describes persistence operations for the customer
// directory.
type CustomerRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}
