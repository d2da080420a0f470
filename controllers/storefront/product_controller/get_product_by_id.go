package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

type productDetailResponse struct {
	models.Product
	StockStatus models.StockStatus `json:"stockStatus"`
}

// GetProductByID returns the full product record for the detail modal,
// alternatives and stock status included.
func GetProductByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product ID is required"))
		return
	}

	product, err := services.GetCatalogService().GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched", productDetailResponse{
		Product:     product,
		StockStatus: product.StockStatus(),
	}))
}
