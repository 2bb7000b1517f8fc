package dto

import "time"

// OrderItemRequest is one requested line within an order creation request.
type OrderItemRequest struct {
	ProductName string  `json:"productName"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
}

// CreateOrderRequest is the POST /api/orders payload.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest carries the integer-encoded target status.
// Status is a pointer so a missing field can be told apart from code 0.
type UpdateOrderStatusRequest struct {
	Status *int `json:"status"`
}

// OrderItemResponse represents one stored order line.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"orderId"`
	ProductName string  `json:"productName"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderResponse represents a stored order; Status uses the integer encoding.
type OrderResponse struct {
	ID          int64               `json:"id"`
	CustomerID  string              `json:"customerId"`
	Status      int                 `json:"status"`
	TotalAmount float64             `json:"totalAmount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
}
