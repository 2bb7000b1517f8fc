package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/mpetrenko/ordersvc/internal/domain/errors"
	"github.com/mpetrenko/ordersvc/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and lets tests override behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListFn         func(context.Context, int, int) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, time.Time) error

	mu     sync.Mutex
	nextID int64
	Orders map[int64]*model.Order
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{nextID: 1, Orders: make(map[int64]*model.Order)}
}

// Create assigns identifiers and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	stored := *order
	stored.ID = s.nextID
	s.nextID++
	stored.Items = make([]model.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)
	for i := range stored.Items {
		stored.Items[i].ID = s.nextID
		s.nextID++
		stored.Items[i].OrderID = stored.ID
	}
	s.Orders[stored.ID] = &stored
	result := stored
	return &result, nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[orderID]; ok {
		result := *order
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored orders newest-first with offset/limit applied.
func (s *OrderRepositoryStub) List(ctx context.Context, offset, limit int) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, offset, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		all = append(all, *order)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if offset >= len(all) {
		return []model.Order{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// UpdateStatus mutates a stored order or reports not found.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, updatedAt time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, updatedAt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	stamp := updatedAt
	order.UpdatedAt = &stamp
	return nil
}

// CountAll counts stored orders.
func (s *OrderRepositoryStub) CountAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.Orders)), nil
}

// CountByStatus groups stored orders by their current status.
func (s *OrderRepositoryStub) CountByStatus(ctx context.Context) (map[model.OrderStatus]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[model.OrderStatus]int64)
	for _, order := range s.Orders {
		counts[order.Status]++
	}
	return counts, nil
}

// SumRevenue totals order amounts excluding one status.
func (s *OrderRepositoryStub) SumRevenue(ctx context.Context, excluding model.OrderStatus) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var revenue float64
	for _, order := range s.Orders {
		if order.Status != excluding {
			revenue += order.TotalAmount
		}
	}
	return revenue, nil
}

// CountActive counts orders that are neither delivered nor cancelled.
func (s *OrderRepositoryStub) CountActive(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active int64
	for _, order := range s.Orders {
		if order.Status.Active() {
			active++
		}
	}
	return active, nil
}

// MetricsStub records metrics sink notifications for assertions.
type MetricsStub struct {
	mu      sync.Mutex
	Created int
	Active  []int64
}

// OrderCreated counts created-order notifications.
func (s *MetricsStub) OrderCreated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created++
}

// SetActiveOrders records every gauge refresh.
func (s *MetricsStub) SetActiveOrders(count int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Active = append(s.Active, count)
}
