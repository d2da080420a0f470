package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// RemoveItem drops every cart line for the given base product,
// alternatives included.
func RemoveItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product ID is required"))
		return
	}

	items, err := services.GetCartService().Remove(c.Request.Context(), id, productID)
	if err != nil {
		log.Printf("[cart.remove] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	respondWithCart(c, "Item removed from cart", items)
}
