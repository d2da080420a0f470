package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookieName = "cart_id"

// Cart cookie lifetime in seconds (30 days), matching the idle TTL of
// the persisted blob.
const cartCookieMaxAge = 30 * 24 * 3600

// CartSession assigns every visitor a stable cart id cookie. Guests
// get a cart too; the cookie is namespaced separately from auth_token
// so logging out never clears the cart.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := c.Cookie(cartCookieName)
		if err != nil || cartID == "" {
			cartID = uuid.Must(uuid.NewV7()).String()
			isProd := os.Getenv("ENV") == "production"
			c.SetCookie(cartCookieName, cartID, cartCookieMaxAge, "/", "", isProd, true)
		}

		c.Set("cartID", cartID)
		c.Next()
	}
}

// GetCartIDFromContext returns the cart id set by CartSession.
func GetCartIDFromContext(c *gin.Context) (string, bool) {
	cartID, exists := c.Get("cartID")
	if !exists {
		return "", false
	}
	return cartID.(string), true
}
