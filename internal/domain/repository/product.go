package repository

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// ProductRepository exposes the read-only product catalog.
type ProductRepository interface {
	ListAvailable(ctx context.Context) ([]model.Product, error)
}
