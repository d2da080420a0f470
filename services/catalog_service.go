package services

import (
	"sort"
	"strings"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// CatalogService serves the static product catalog: filtering, the
// part-number search path and per-product lookups. All reads are pure;
// the catalog is never mutated after construction.
type CatalogService struct {
	products []models.Product
	byID     map[string]*models.Product
}

var catalogService *CatalogService

// InitCatalogService wires the global catalog used by the controllers.
func InitCatalogService(products []models.Product) *CatalogService {
	catalogService = NewCatalogService(products)
	return catalogService
}

// GetCatalogService returns the initialized catalog service.
func GetCatalogService() *CatalogService {
	return catalogService
}

// NewCatalogService copies the seed list and indexes it. Alternatives
// are indexed too so cart lines can reference them by id.
func NewCatalogService(products []models.Product) *CatalogService {
	owned := make([]models.Product, len(products))
	copy(owned, products)

	byID := make(map[string]*models.Product, len(owned))
	for i := range owned {
		byID[owned[i].ID] = &owned[i]
		for j := range owned[i].Alternatives {
			alt := &owned[i].Alternatives[j]
			byID[alt.ID] = alt
		}
	}

	return &CatalogService{products: owned, byID: byID}
}

// Products returns the full catalog in seed order.
func (s *CatalogService) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID looks up a product (or one of its alternatives) by id.
func (s *CatalogService) GetByID(id string) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// Filter applies the criteria as sequential narrowing steps, preserving
// the relative order of the input. An empty criteria is the identity.
func (s *CatalogService) Filter(criteria models.FilterCriteria) ([]models.Product, error) {
	if criteria.PriceRange == (models.PriceRange{}) {
		criteria.PriceRange = models.DefaultPriceRange()
	}
	if criteria.PriceRange.Min > criteria.PriceRange.Max {
		return nil, ErrInvalidPriceRange
	}

	filtered := s.Products()

	if criteria.SearchQuery != "" {
		terms := searchTerms(criteria.SearchQuery)
		filtered = keep(filtered, func(p *models.Product) bool {
			haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.PartNumber + " " + p.Description)
			for _, term := range terms {
				if !strings.Contains(haystack, term) {
					return false
				}
			}
			return true
		})
	}

	if criteria.Brand != "" {
		filtered = keep(filtered, func(p *models.Product) bool { return p.Brand == criteria.Brand })
	}

	if criteria.Category != "" {
		filtered = keep(filtered, func(p *models.Product) bool { return p.Category == criteria.Category })
	}

	if criteria.SubCategory != "" {
		filtered = keep(filtered, func(p *models.Product) bool { return p.SubCategory == criteria.SubCategory })
	}

	if criteria.Year != 0 {
		filtered = keep(filtered, func(p *models.Product) bool {
			for _, y := range p.Compatibility.Years {
				if y == criteria.Year {
					return true
				}
			}
			return false
		})
	}

	if criteria.Model != "" {
		needle := strings.ToLower(criteria.Model)
		filtered = keep(filtered, func(p *models.Product) bool {
			for _, m := range p.Compatibility.Models {
				if strings.Contains(strings.ToLower(m), needle) {
					return true
				}
			}
			return false
		})
	}

	filtered = keep(filtered, func(p *models.Product) bool {
		return p.Price >= criteria.PriceRange.Min && p.Price <= criteria.PriceRange.Max
	})

	if criteria.InStock {
		filtered = keep(filtered, func(p *models.Product) bool { return p.Stock > 0 })
	}

	return filtered, nil
}

// SearchByPartNumber is the reference-search path, independent of the
// filter state: a case-insensitive substring match on part numbers. The
// result replaces, not narrows, the filtered list.
func (s *CatalogService) SearchByPartNumber(query string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	return keep(s.Products(), func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.PartNumber), needle)
	})
}

// FilterMetadata computes the sidebar data: distinct brands and
// categories, catalog price bounds, availability counts and the span of
// compatible vehicle years.
func (s *CatalogService) FilterMetadata() models.FilterMetadata {
	meta := models.FilterMetadata{Models: make(map[string][]string)}

	brandSet := make(map[string]bool)
	catSubs := make(map[string]map[string]bool)
	var catOrder []string
	modelSets := make(map[string]map[string]bool)

	priceRange := &models.PriceRangeData{}
	availability := &models.AvailabilityData{}
	years := &models.YearRangeData{}

	for i := range s.products {
		p := &s.products[i]

		brandSet[p.Brand] = true

		if _, ok := catSubs[p.Category]; !ok {
			catSubs[p.Category] = make(map[string]bool)
			catOrder = append(catOrder, p.Category)
		}
		if p.SubCategory != "" {
			catSubs[p.Category][p.SubCategory] = true
		}

		if i == 0 || p.Price < priceRange.Min {
			priceRange.Min = p.Price
		}
		if p.Price > priceRange.Max {
			priceRange.Max = p.Price
		}

		if p.Stock > 0 {
			availability.InStock++
		} else {
			availability.OutOfStock++
		}

		for _, y := range p.Compatibility.Years {
			if years.Min == 0 || y < years.Min {
				years.Min = y
			}
			if y > years.Max {
				years.Max = y
			}
		}

		for _, vb := range p.Compatibility.Brands {
			if modelSets[vb] == nil {
				modelSets[vb] = make(map[string]bool)
			}
			for _, m := range p.Compatibility.Models {
				modelSets[vb][m] = true
			}
		}
	}

	meta.Brands = sortedKeys(brandSet)
	for _, cat := range catOrder {
		meta.Categories = append(meta.Categories, models.CategoryData{
			Name:          cat,
			SubCategories: sortedKeys(catSubs[cat]),
		})
	}
	for vb, set := range modelSets {
		meta.Models[vb] = sortedKeys(set)
	}
	meta.PriceRange = priceRange
	meta.Availability = availability
	meta.Years = years

	return meta
}

func searchTerms(query string) []string {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func keep(products []models.Product, pred func(*models.Product) bool) []models.Product {
	out := products[:0:0]
	for i := range products {
		if pred(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
