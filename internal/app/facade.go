package app

import (
	"context"

	"github.com/mpetrenko/ordersvc/internal/domain/model"
	"github.com/mpetrenko/ordersvc/internal/usecase"
)

// OrderFacade exposes the order service operations consumed by the HTTP layer.
type OrderFacade struct {
	orders *usecase.OrderUseCase
}

// NewOrderFacade constructs OrderFacade.
func NewOrderFacade(orders *usecase.OrderUseCase) *OrderFacade {
	return &OrderFacade{orders: orders}
}

func (f *OrderFacade) ListOrders(ctx context.Context, page, pageSize int) ([]model.Order, error) {
	return f.orders.List(ctx, page, pageSize)
}

func (f *OrderFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *OrderFacade) CreateOrder(ctx context.Context, customerID string, items []model.OrderItem) (*model.Order, error) {
	return f.orders.Create(ctx, customerID, items)
}

func (f *OrderFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *OrderFacade) Stats(ctx context.Context) (*model.OrderStats, error) {
	return f.orders.Stats(ctx)
}
