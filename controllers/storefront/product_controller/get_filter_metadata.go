package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	metadata_cache "github.com/kingofshadpow/SOS-Auto/cache"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetFilterMetadata returns the sidebar data: brands, categories with
// subcategories, price bounds, availability counts and compatible
// years. Served from the TTL cache when warm.
func GetFilterMetadata(c *gin.Context) {
	if meta, ok := metadata_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched (cached)", meta))
		return
	}

	meta := services.GetCatalogService().FilterMetadata()
	metadata_cache.Set(meta)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", meta))
}
