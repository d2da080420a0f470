package profile_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetMe checks authentication status and returns the basic account
// info the frontend keeps in its header.
func GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	user, err := services.GetUserDirectory().GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated", user.ToResponse()))
}
