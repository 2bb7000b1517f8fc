package usecase

import (
	"fmt"

	domainErrors "github.com/mpetrenko/ordersvc/internal/domain/errors"
	"github.com/mpetrenko/ordersvc/internal/domain/model"
)

// ValidateNewOrder checks an order creation request before anything is persisted.
func ValidateNewOrder(customerID string, items []model.OrderItem) error {
	if customerID == "" {
		return fmt.Errorf("%w: customer id is required", domainErrors.ErrInvalidOrder)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", domainErrors.ErrInvalidOrder)
	}

	for i, item := range items {
		if item.ProductName == "" {
			return fmt.Errorf("%w: item %d has no product name", domainErrors.ErrInvalidOrder, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", domainErrors.ErrInvalidOrder, i)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %d price must not be negative", domainErrors.ErrInvalidOrder, i)
		}
	}

	return nil
}
