package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// CreateOrder runs checkout: it snapshots the caller's current cart
// into an order, prices it with the chosen shipping method, then
// clears the cart. Line items come from the cart, never from the body.
func CreateOrder(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	cartID, exists := middleware.GetCartIDFromContext(c)
	if !exists {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing cart session"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if req.ShippingMethod == "" {
		req.ShippingMethod = services.ShippingStandard
	}

	cart := services.GetCartService()
	items, err := cart.Items(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[order.create] failed to load cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	order, err := services.GetOrderService().Create(services.CreateOrderParams{
		UserID:          userID,
		Items:           items,
		Totals:          cart.TotalsFor(items, req.ShippingMethod),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ShippingMethod:  req.ShippingMethod,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		log.Printf("[order.create] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	if err := cart.Clear(c.Request.Context(), cartID); err != nil {
		// The order exists; a stale cart is recoverable.
		log.Printf("⚠️ [order.create] failed to clear cart %s: %v", cartID, err)
	}

	log.Printf("✅ Order %s created for user %s", order.ID, userID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created", order))
}
