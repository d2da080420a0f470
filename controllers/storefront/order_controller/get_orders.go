package order_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetOrders returns the caller's order history, newest last, as
// trimmed list rows.
func GetOrders(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orders := services.GetOrderService().ListByUser(userID)
	total := len(orders)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	history := make([]models.OrderHistoryResponse, 0, end-start)
	for i := start; i < end; i++ {
		history = append(history, orders[i].ToHistoryResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched", history, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}))
}
