package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
)

func TestValidateOrderItemsAccepted(t *testing.T) {
	items := []model.OrderItem{
		{Name: "Fresh Milk", Price: decimal.NewFromFloat(3.5), Quantity: 2},
		{Name: "Paneer", Price: decimal.NewFromInt(6), Quantity: 1},
	}
	if err := ValidateOrderItems(items); err != nil {
		t.Fatalf("expected items to validate, got %v", err)
	}
}

func TestValidateOrderItemsRejected(t *testing.T) {
	cases := []struct {
		name  string
		items []model.OrderItem
	}{
		{name: "empty", items: nil},
		{name: "blank name", items: []model.OrderItem{{Name: "   ", Quantity: 1}}},
		{name: "zero quantity", items: []model.OrderItem{{Name: "Curd", Quantity: 0}}},
		{name: "negative quantity", items: []model.OrderItem{{Name: "Curd", Quantity: -2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOrderItems(tc.items)
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
