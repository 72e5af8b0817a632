package dto

import "github.com/shopspring/decimal"

// ProductResponse is one available catalog entry.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}
