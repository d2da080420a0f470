package auth_controller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// Logout clears the auth_token cookie. The cart_id cookie survives so
// the cart follows the visitor back to guest browsing.
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	// delete auth_token (must match name, path, domain, secure, httpOnly)
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
