package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/controllers/storefront/auth_controller"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/register", auth_controller.Register)
		auth.POST("/logout", auth_controller.Logout)
	}
}
