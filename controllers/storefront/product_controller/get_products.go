package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// GetProducts returns the catalog narrowed by the query filters, with
// pagination. The active criteria are persisted alongside the visitor's
// cart blob so the sidebar state survives a reload.
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	criteria := parseCriteria(c)

	filtered, err := services.GetCatalogService().Filter(criteria)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPriceRange) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid price range"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to filter products"))
		return
	}

	// Best effort; a failed snapshot only loses the saved sidebar state.
	if cartID, ok := middleware.GetCartIDFromContext(c); ok {
		if err := services.GetCartService().SaveFilters(c.Request.Context(), cartID, criteria); err != nil {
			log.Printf("[store.products] failed to persist filters: %v", err)
		}
	}

	pageItems, total := paginate(filtered, page, limit)
	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		toStorefrontList(pageItems),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
