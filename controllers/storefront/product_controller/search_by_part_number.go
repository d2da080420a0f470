package product_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

// The part-number path only kicks in past this many characters; shorter
// queries return an empty list rather than the whole catalog.
const minPartNumberQuery = 3

// SearchByPartNumber is the reference-search endpoint. Its result
// replaces the filtered list on the client; it never combines with the
// sidebar filters.
func SearchByPartNumber(c *gin.Context) {
	query := strings.TrimSpace(c.Query("part"))
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'part' is required"))
		return
	}

	if len(query) <= minPartNumberQuery {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Query too short", []models.StorefrontProductResponse{}))
		return
	}

	found := services.GetCatalogService().SearchByPartNumber(query)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Part number search results",
		toStorefrontList(found),
	))
}
