package repository

import (
	"context"
	"time"

	"github.com/mpetrenko/ordersvc/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their items.
type OrderRepository interface {
	// Create persists the order together with its items as one atomic unit and
	// returns the stored order with assigned identifiers.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	// List returns orders newest-first, items included.
	List(ctx context.Context, offset, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, updatedAt time.Time) error

	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int64, error)
	// SumRevenue totals order amounts over all orders not in the excluded status.
	SumRevenue(ctx context.Context, excluding model.OrderStatus) (float64, error)
	// CountActive counts orders that are neither delivered nor cancelled.
	CountActive(ctx context.Context) (int64, error)
}
