package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/controllers/storefront/order_controller"
	"github.com/kingofshadpow/SOS-Auto/controllers/storefront/profile_controller"
	"github.com/kingofshadpow/SOS-Auto/middleware"
)

// SetupUserRoutes sets up all user profile and order routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/me", profile_controller.GetMe)
		user.GET("/profile", profile_controller.GetProfile)
		user.PATCH("/profile", profile_controller.UpdateProfile)

		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.POST("/orders", order_controller.CreateOrder)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.GET("/orders/:id/invoice", order_controller.DownloadInvoice)
	}
}
