package handlers

import (
	"context"

	"github.com/mpetrenko/ordersvc/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	CreateOrder(ctx context.Context, customerID string, items []model.OrderItem) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Stats(ctx context.Context) (*model.OrderStats, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
