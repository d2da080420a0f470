package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// AddItem puts a product (optionally substituted by one of its
// alternatives) into the cart. Re-adding the same product/alternative
// pair increments the existing line.
func AddItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	items, err := services.GetCartService().Add(c.Request.Context(), id, req.ProductID, req.Quantity, req.AlternativeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		case errors.Is(err, services.ErrAlternativeInvalid):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Alternative does not belong to this product"))
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quantity must be at least 1"))
		default:
			log.Printf("[cart.add] %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		}
		return
	}

	respondWithCart(c, "Item added to cart", items)
}
