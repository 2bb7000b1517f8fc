package test

import (
	"context"
	"time"

	"github.com/mpetrenko/ordersvc/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	ListFn         func(context.Context, int, int) ([]model.Order, error)
	OrderFn        func(context.Context, int64) (*model.Order, error)
	CreateFn       func(context.Context, string, []model.OrderItem) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error
	StatsFn        func(context.Context) (*model.OrderStats, error)
}

// ListOrders delegates to provided function or returns a single default order.
func (s OrderFacadeStub) ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, page, pageSize)
	}
	return []model.Order{DefaultOrder()}, nil
}

// Order delegates to provided function or returns a default order.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	order := DefaultOrder()
	order.ID = orderID
	return &order, nil
}

// CreateOrder delegates to provided function or echoes the request back.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, customerID string, items []model.OrderItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, items)
	}
	order := model.Order{
		ID:         1,
		CustomerID: customerID,
		Status:     model.OrderStatusPending,
		Items:      items,
		CreatedAt:  time.Unix(0, 0).UTC(),
	}
	order.TotalAmount = order.ComputeTotal()
	return &order, nil
}

// UpdateOrderStatus executes configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	return nil
}

// Stats returns configured aggregates or an empty snapshot.
func (s OrderFacadeStub) Stats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{OrdersByStatus: map[model.OrderStatus]int64{}}, nil
}

// HealthCheckerStub simulates store connectivity checks.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// DefaultOrder returns a deterministic order used as stub output.
func DefaultOrder() model.Order {
	return model.Order{
		ID:          1,
		CustomerID:  "cust-1",
		Status:      model.OrderStatusPending,
		TotalAmount: 999.99,
		Items: []model.OrderItem{
			{ID: 1, OrderID: 1, ProductName: "Laptop", Quantity: 1, Price: 999.99},
		},
		CreatedAt: time.Unix(0, 0).UTC(),
	}
}
