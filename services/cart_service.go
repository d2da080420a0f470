package services

import (
	"context"

	"github.com/kingofshadpow/SOS-Auto/config"
	"github.com/kingofshadpow/SOS-Auto/models"
)

// Shipping methods accepted at checkout.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// CartService owns cart lines and totals. Carts are keyed by cart id
// (a cookie, so guests get one too) and snapshotted to the backend on
// every mutation.
type CartService struct {
	backend CartBackend
	catalog *CatalogService
	shop    config.ShopConfig
}

var cartService *CartService

// InitCartService wires the global cart service used by the controllers.
func InitCartService(backend CartBackend, catalog *CatalogService, shop config.ShopConfig) *CartService {
	cartService = NewCartService(backend, catalog, shop)
	return cartService
}

// GetCartService returns the initialized cart service.
func GetCartService() *CartService {
	return cartService
}

func NewCartService(backend CartBackend, catalog *CatalogService, shop config.ShopConfig) *CartService {
	return &CartService{backend: backend, catalog: catalog, shop: shop}
}

// Add puts a product in the cart. A line matching both the product and
// the selected alternative (none counts as its own key) has its
// quantity incremented; anything else appends a new line, so the same
// base product with two different alternatives is two lines.
func (s *CartService) Add(ctx context.Context, cartID, productID string, quantity int, alternativeID string) ([]models.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.GetByID(productID)
	if err != nil {
		return nil, err
	}

	var alternative *models.Product
	if alternativeID != "" {
		found := false
		for i := range product.Alternatives {
			if product.Alternatives[i].ID == alternativeID {
				alt := product.Alternatives[i]
				alternative = &alt
				found = true
				break
			}
		}
		if !found {
			return nil, ErrAlternativeInvalid
		}
	}

	snap, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range snap.Items {
		item := &snap.Items[i]
		if item.Product.ID == productID && item.AlternativeID() == alternativeID {
			item.Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		snap.Items = append(snap.Items, models.CartItem{
			Product:             product,
			Quantity:            quantity,
			SelectedAlternative: alternative,
		})
	}

	if err := s.backend.Save(ctx, cartID, snap); err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// SetQuantity sets a line's quantity verbatim. Zero or less removes the
// line entirely; lines are never retained at quantity zero.
func (s *CartService) SetQuantity(ctx context.Context, cartID, productID string, quantity int) ([]models.CartItem, error) {
	snap, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		snap.Items = removeLine(snap.Items, productID)
	} else {
		for i := range snap.Items {
			if snap.Items[i].Product.ID == productID {
				snap.Items[i].Quantity = quantity
			}
		}
	}

	if err := s.backend.Save(ctx, cartID, snap); err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// Remove drops every line carrying the given base product.
func (s *CartService) Remove(ctx context.Context, cartID, productID string) ([]models.CartItem, error) {
	snap, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	snap.Items = removeLine(snap.Items, productID)

	if err := s.backend.Save(ctx, cartID, snap); err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// Clear empties the cart. Saved filters survive; only the lines go.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	snap, err := s.load(ctx, cartID)
	if err != nil {
		return err
	}
	snap.Items = nil
	return s.backend.Save(ctx, cartID, snap)
}

// Items returns the current cart lines.
func (s *CartService) Items(ctx context.Context, cartID string) ([]models.CartItem, error) {
	snap, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// SaveFilters persists the user's filter state alongside the cart, so
// both survive a reload in the same blob.
func (s *CartService) SaveFilters(ctx context.Context, cartID string, filters models.FilterCriteria) error {
	snap, err := s.load(ctx, cartID)
	if err != nil {
		return err
	}
	snap.Filters = filters
	return s.backend.Save(ctx, cartID, snap)
}

// Totals computes the money view. Standard shipping is waived above the
// free-shipping threshold; express is a flat fee, never waived.
func (s *CartService) Totals(ctx context.Context, cartID, shippingMethod string) (models.CartTotals, error) {
	items, err := s.Items(ctx, cartID)
	if err != nil {
		return models.CartTotals{}, err
	}
	return s.TotalsFor(items, shippingMethod), nil
}

// TotalsFor computes totals for a given line set. Split out so checkout
// can price the exact lines it snapshots.
func (s *CartService) TotalsFor(items []models.CartItem, shippingMethod string) models.CartTotals {
	totals := models.CartTotals{}
	for i := range items {
		totals.Subtotal += items[i].EffectivePrice() * float64(items[i].Quantity)
		totals.ItemCount += items[i].Quantity
	}

	switch shippingMethod {
	case ShippingExpress:
		totals.ShippingCost = s.shop.ExpressShippingFee
	default:
		if totals.Subtotal > s.shop.FreeShippingThreshold {
			totals.ShippingCost = 0
			totals.FreeShipping = true
		} else {
			totals.ShippingCost = s.shop.StandardShippingFee
		}
	}

	totals.Total = totals.Subtotal + totals.ShippingCost
	return totals
}

func (s *CartService) load(ctx context.Context, cartID string) (*models.CartSnapshot, error) {
	snap, err := s.backend.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		snap = &models.CartSnapshot{Filters: models.FilterCriteria{PriceRange: models.DefaultPriceRange()}}
	}
	return snap, nil
}

func removeLine(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for i := range items {
		if items[i].Product.ID != productID {
			out = append(out, items[i])
		}
	}
	return out
}
