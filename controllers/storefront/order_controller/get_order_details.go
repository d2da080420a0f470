package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetOrderDetails returns one order in full. An order belonging to
// another user reads as not found.
func GetOrderDetails(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	orderID := c.Param("id")
	order, err := services.GetOrderService().GetByID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	if order.UserID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched", order))
}
