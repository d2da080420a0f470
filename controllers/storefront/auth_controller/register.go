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

// Register creates a client account and logs it in immediately.
// Emails are unique case-insensitively.
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	user, err := services.GetUserDirectory().Register(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
			return
		}
		log.Printf("❌ Registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	setAuthCookie(c, token)

	log.Printf("✅ New account: %s", user.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
