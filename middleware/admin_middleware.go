package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// AdminMiddleware requires an authenticated user with the admin role.
// Must be used after AuthMiddleware, which sets userRole.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			log.Printf("[admin] forbidden: role=%s path=%s", role, c.FullPath())
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
