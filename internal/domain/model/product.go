package model

import "github.com/shopspring/decimal"

// Product is a read-only catalog entry. The storefront only ever sees
// available products.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Unit        string
	ImageURL    string
	Available   bool
}
