package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
	"github.com/kingofshadpow/SOS-Auto/utils"
)

// Login authenticates by email lookup alone. The directory is a demo
// store, so any password passes for a known account; unknown emails
// get a 401 without revealing whether the account exists.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	user, err := services.GetUserDirectory().Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
			return
		}
		log.Printf("❌ Login failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	utils.LogLoginEvent(c, user.ID)
	setAuthCookie(c, token)

	log.Printf("✅ Login: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
