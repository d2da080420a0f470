package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// UpdateItem sets a cart line's quantity verbatim. A quantity of zero
// or less removes the line.
func UpdateItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product ID is required"))
		return
	}

	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	items, err := services.GetCartService().SetQuantity(c.Request.Context(), id, productID, req.Quantity)
	if err != nil {
		log.Printf("[cart.update] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}

	respondWithCart(c, "Cart updated", items)
}
