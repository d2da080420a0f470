package models

// FilterCriteria narrows the catalog. Zero values mean "not set"; an
// empty criteria returns the catalog unchanged.
type FilterCriteria struct {
	Brand       string     `json:"brand" form:"brand"`
	Category    string     `json:"category" form:"category"`
	SubCategory string     `json:"subCategory" form:"subCategory"`
	Year        int        `json:"year" form:"year"`
	Model       string     `json:"model" form:"model"`
	PriceRange  PriceRange `json:"priceRange"`
	InStock     bool       `json:"inStock" form:"inStock"`
	SearchQuery string     `json:"searchQuery" form:"q"`
}

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min" form:"minPrice"`
	Max float64 `json:"max" form:"maxPrice"`
}

// DefaultPriceRange mirrors the storefront's slider bounds.
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: 1000}
}

// FilterMetadata feeds the storefront filter sidebar.
type FilterMetadata struct {
	Brands       []string            `json:"brands"`
	Categories   []CategoryData      `json:"categories"`
	PriceRange   *PriceRangeData     `json:"priceRange"`
	Availability *AvailabilityData   `json:"availability"`
	Years        *YearRangeData      `json:"years"`
	Models       map[string][]string `json:"models"` // vehicle brand -> models
}

// CategoryData represents a category with its subcategories.
type CategoryData struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories,omitempty"`
}

// AvailabilityData represents product availability counts.
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData represents the minimum and maximum price in the catalog.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// YearRangeData represents the span of compatible vehicle years.
type YearRangeData struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
