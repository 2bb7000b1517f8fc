package dto

// StatsResponse aggregates order counts and revenue; only observed statuses
// appear in OrdersByStatus, keyed by status name.
type StatsResponse struct {
	TotalOrders    int64            `json:"totalOrders"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
	TotalRevenue   float64          `json:"totalRevenue"`
}
