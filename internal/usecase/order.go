package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainErrors "github.com/mpetrenko/ordersvc/internal/domain/errors"
	"github.com/mpetrenko/ordersvc/internal/domain/model"
	"github.com/mpetrenko/ordersvc/internal/domain/repository"
)

// Metrics abstracts the metrics sink notified about order events.
type Metrics interface {
	OrderCreated()
	SetActiveOrders(count int64)
}

// PageLimits bounds caller supplied pagination parameters.
type PageLimits struct {
	Default int
	Max     int
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders  repository.OrderRepository
	metrics Metrics
	logger  *slog.Logger
	limits  PageLimits
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, metrics Metrics, logger *slog.Logger, limits PageLimits) *OrderUseCase {
	if limits.Default <= 0 {
		limits.Default = 10
	}
	if limits.Max < limits.Default {
		limits.Max = limits.Default
	}
	return &OrderUseCase{orders: orders, metrics: metrics, logger: logger, limits: limits}
}

// List returns one page of orders, newest first. Non-positive page or pageSize
// fall back to defaults, oversized pageSize is capped; a page past the end of
// the data yields an empty result, not an error.
func (u *OrderUseCase) List(ctx context.Context, page, pageSize int) ([]model.Order, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = u.limits.Default
	}
	if pageSize > u.limits.Max {
		pageSize = u.limits.Max
	}

	return u.orders.List(ctx, (page-1)*pageSize, pageSize)
}

// Get returns one order with its items.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// Create validates the request, computes the total and persists the order in
// pending state together with its items.
func (u *OrderUseCase) Create(ctx context.Context, customerID string, items []model.OrderItem) (*model.Order, error) {
	if err := ValidateNewOrder(customerID, items); err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerID: customerID,
		Status:     model.OrderStatusPending,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	}
	order.TotalAmount = order.ComputeTotal()

	stored, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	u.metrics.OrderCreated()
	u.logger.Info("order created",
		slog.Int64("order_id", stored.ID),
		slog.String("customer_id", stored.CustomerID),
	)
	return stored, nil
}

// UpdateStatus moves the order into the given status and stamps the update
// time. Any known status may follow any other.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, status)
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status, time.Now().UTC()); err != nil {
		return err
	}

	u.logger.Info("order status updated",
		slog.Int64("order_id", orderID),
		slog.String("status", string(status)),
	)
	return nil
}

// Stats aggregates the order book and refreshes the active-orders gauge as a
// side effect of every read.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	total, err := u.orders.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := u.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := u.orders.SumRevenue(ctx, model.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	active, err := u.orders.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	u.metrics.SetActiveOrders(active)

	return &model.OrderStats{
		TotalOrders:    total,
		OrdersByStatus: byStatus,
		TotalRevenue:   revenue,
	}, nil
}
