package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetCart returns the current cart lines and totals.
func GetCart(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	items, err := services.GetCartService().Items(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	respondWithCart(c, "Cart fetched", items)
}
