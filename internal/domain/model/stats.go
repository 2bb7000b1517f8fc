package model

// OrderStats aggregates the current state of the order book.
type OrderStats struct {
	TotalOrders    int64
	OrdersByStatus map[OrderStatus]int64
	TotalRevenue   float64
}
