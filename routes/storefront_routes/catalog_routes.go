package storefront_routes

import (
	"github.com/gin-gonic/gin"

	store_product "github.com/kingofshadpow/SOS-Auto/controllers/storefront/product_controller"
)

// SetupCatalogRoutes sets up the public product catalog routes.
func SetupCatalogRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts)                 // List with filters
		products.GET("/search", store_product.SearchByPartNumber)   // Part-number search
		products.GET("/:id", store_product.GetProductByID)          // Single product
	}

	store.GET("/filters/metadata", store_product.GetFilterMetadata)
}
