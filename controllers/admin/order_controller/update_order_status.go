package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// UpdateOrderStatus moves an order through its lifecycle. Statuses only
// move forward; cancelled is reachable from any non-terminal state, and
// delivered or cancelled orders never change again.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	order, err := services.GetOrderService().UpdateStatus(orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		case errors.Is(err, services.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown status"))
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Invalid status transition"))
		default:
			log.Printf("[order.status] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		}
		return
	}

	log.Printf("✅ Order %s → %s", order.ID, order.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}
