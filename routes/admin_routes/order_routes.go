package admin_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/controllers/admin/order_controller"
	"github.com/kingofshadpow/SOS-Auto/middleware"
)

// SetupAdminRoutes sets up the back-office routes. Everything here
// requires an admin account; mutations land in the activity log.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.AdminMiddleware(),
		middleware.RateLimiter(100, time.Minute),
		middleware.ActivityLoggingMiddleware(),
	)
	{
		// Orders
		admin.GET("/orders", order_controller.GetOrders)
		admin.PATCH("/orders/:id/status", order_controller.UpdateOrderStatus)
	}
}
