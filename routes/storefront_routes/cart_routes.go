package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/controllers/storefront/cart_controller"
)

// SetupCartRoutes sets up the cart routes. Carts ride on the cart_id
// cookie, so these stay public: guests fill carts too.
func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddItem)
		cart.PATCH("/items/:productId", cart_controller.UpdateItem)
		cart.DELETE("/items/:productId", cart_controller.RemoveItem)
		cart.DELETE("", cart_controller.ClearCart)
	}
}
