package order_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetOrders lists every order in the shop, optionally narrowed to one
// status, for the back office.
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders := services.GetOrderService().ListAll()

	if status := c.Query("status"); status != "" {
		filtered := orders[:0:0]
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

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

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched", orders[start:end], &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}))
}
