package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// ClearCart empties the cart. Saved filter state is untouched.
func ClearCart(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	if err := services.GetCartService().Clear(c.Request.Context(), id); err != nil {
		log.Printf("[cart.clear] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	respondWithCart(c, "Cart cleared", nil)
}
