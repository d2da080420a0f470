package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// cartID pulls the visitor's cart id or rejects the request.
func cartID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetCartIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing cart session"))
		return "", false
	}
	return id, true
}

// shippingMethod reads the ?shipping= selector, defaulting to standard.
func shippingMethod(c *gin.Context) string {
	if c.Query("shipping") == services.ShippingExpress {
		return services.ShippingExpress
	}
	return services.ShippingStandard
}

// respondWithCart returns the lines plus derived totals.
func respondWithCart(c *gin.Context, message string, items []models.CartItem) {
	totals := services.GetCartService().TotalsFor(items, shippingMethod(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.CartResponse{
		Items:  items,
		Totals: totals,
	}))
}
