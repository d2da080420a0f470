package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseCriteria reads the filter query params. Unset price bounds fall
// back to the storefront slider defaults.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	criteria := models.FilterCriteria{
		Brand:       c.Query("brand"),
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
		Model:       c.Query("model"),
		SearchQuery: c.Query("q"),
		PriceRange:  models.DefaultPriceRange(),
	}

	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			criteria.Year = year
		}
	}
	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			criteria.PriceRange.Min = min
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			criteria.PriceRange.Max = max
		}
	}
	if inStock := c.Query("inStock"); inStock == "true" || inStock == "1" {
		criteria.InStock = true
	}

	return criteria
}

func paginate(products []models.Product, page, limit int) ([]models.Product, int) {
	total := len(products)
	start := (page - 1) * limit
	if start >= total {
		return []models.Product{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return products[start:end], total
}

func toStorefrontList(products []models.Product) []models.StorefrontProductResponse {
	out := make([]models.StorefrontProductResponse, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToStorefrontResponse())
	}
	return out
}
