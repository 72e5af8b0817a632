package usecase

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
)

// CatalogUseCase serves the read-only product listing.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// ListAvailable returns catalog entries currently offered for sale.
func (u *CatalogUseCase) ListAvailable(ctx context.Context) ([]model.Product, error) {
	return u.products.ListAvailable(ctx)
}
