package auth_controller

import (
	"os"

	"github.com/gin-gonic/gin"
)

// setAuthCookie issues the HTTP-only session cookie carrying the JWT.
// Name, path, secure flag and HttpOnly must match Logout's delete.
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true,
	)
}
