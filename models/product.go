package models

// Compatibility describes which vehicles a part fits.
type Compatibility struct {
	Brands []string `json:"brands"`
	Models []string `json:"models"`
	Years  []int    `json:"years"`
}

// Product is a catalog entry. The catalog is loaded once at startup and
// never mutated afterwards; everything downstream (cart lines, order
// items) copies what it needs.
type Product struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Brand             string            `json:"brand"`
	Category          string            `json:"category"`
	SubCategory       string            `json:"subCategory"`
	PartNumber        string            `json:"partNumber"`
	Price             float64           `json:"price"`
	OriginalPrice     *float64          `json:"originalPrice,omitempty"`
	Description       string            `json:"description"`
	Specifications    map[string]string `json:"specifications"`
	Compatibility     Compatibility     `json:"compatibility"`
	Images            []string          `json:"images"`
	Stock             int               `json:"stock"`
	LowStockThreshold int               `json:"lowStockThreshold"`
	RestockDate       *string           `json:"restockDate,omitempty"` // "YYYY-MM-DD"
	Rating            float64           `json:"rating"`
	ReviewCount       int               `json:"reviewCount"`
	IsPopular         bool              `json:"isPopular,omitempty"`
	Alternatives      []Product         `json:"alternatives,omitempty"`
}

// StockStatus is the derived availability view the storefront renders.
type StockStatus struct {
	IsInStock    bool    `json:"isInStock"`
	IsLowStock   bool    `json:"isLowStock"`
	IsOutOfStock bool    `json:"isOutOfStock"`
	RestockDate  *string `json:"restockDate,omitempty"`
	StockLevel   string  `json:"stockLevel"` // high | medium | low | out
}

// StockStatus computes availability. A product with stock 0 is out of
// stock regardless of any other field.
func (p *Product) StockStatus() StockStatus {
	s := StockStatus{RestockDate: p.RestockDate}
	switch {
	case p.Stock <= 0:
		s.IsOutOfStock = true
		s.StockLevel = "out"
	case p.Stock <= p.LowStockThreshold:
		s.IsInStock = true
		s.IsLowStock = true
		s.StockLevel = "low"
	case p.Stock <= p.LowStockThreshold*3:
		s.IsInStock = true
		s.StockLevel = "medium"
	default:
		s.IsInStock = true
		s.StockLevel = "high"
	}
	return s
}

// StorefrontProductResponse is the thin list-view payload.
type StorefrontProductResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	PartNumber string  `json:"partNumber"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Rating     float64 `json:"rating"`
	InStock    bool    `json:"inStock"`
}

// ToStorefrontResponse trims a product down to what the grid renders.
func (p *Product) ToStorefrontResponse() StorefrontProductResponse {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return StorefrontProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Brand:      p.Brand,
		PartNumber: p.PartNumber,
		Price:      p.Price,
		Image:      image,
		Rating:     p.Rating,
		InStock:    p.Stock > 0,
	}
}
