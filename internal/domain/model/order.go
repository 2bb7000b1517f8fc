package model

import "time"

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Active reports whether an order in this status still counts as in flight.
func (s OrderStatus) Active() bool {
	return s != OrderStatusDelivered && s != OrderStatusCancelled
}

// OrderItem describes a single line within an order.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    int32
	Price       float64
}

// Order describes a customer purchase with its line items.
type Order struct {
	ID          int64
	CustomerID  string
	Status      OrderStatus
	TotalAmount float64
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ComputeTotal sums price times quantity over all items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
