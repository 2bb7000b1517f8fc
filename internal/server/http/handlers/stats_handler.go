package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpetrenko/ordersvc/internal/server/http/dto"
)

// StatsHandler serves aggregate order statistics.
type StatsHandler struct {
	facade OrderFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade OrderFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Stats handles GET /api/orders/stats.
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	byStatus := make(map[string]int64, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		byStatus[string(status)] = count
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders:    stats.TotalOrders,
		OrdersByStatus: byStatus,
		TotalRevenue:   stats.TotalRevenue,
	})
}
