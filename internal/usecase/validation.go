package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// ValidateOrderItems checks that every line item carries a name and a
// positive quantity.
func ValidateOrderItems(items []model.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items must not be empty", domainErrors.ErrValidation)
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d has no name", domainErrors.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", domainErrors.ErrValidation, i)
		}
	}
	return nil
}
