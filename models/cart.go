package models

// CartItem is one line in a cart. The same base product with two
// different alternatives selected is tracked as two separate lines.
type CartItem struct {
	Product             Product  `json:"product"`
	Quantity            int      `json:"quantity"`
	SelectedAlternative *Product `json:"selectedAlternative,omitempty"`
}

// EffectivePrice is the alternative's price when one is selected,
// otherwise the base product's price.
func (i *CartItem) EffectivePrice() float64 {
	if i.SelectedAlternative != nil {
		return i.SelectedAlternative.Price
	}
	return i.Product.Price
}

// AlternativeID returns the selected alternative's id, or "" when the
// line carries the base product. Used as part of the line merge key.
func (i *CartItem) AlternativeID() string {
	if i.SelectedAlternative != nil {
		return i.SelectedAlternative.ID
	}
	return ""
}

// CartSnapshot is the blob persisted per cart, independent from the
// auth/session blob so one can be cleared without the other.
type CartSnapshot struct {
	Items   []CartItem     `json:"items"`
	Filters FilterCriteria `json:"filters"`
}

// CartTotals is the derived money view of a cart.
type CartTotals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
	FreeShipping bool    `json:"freeShipping"`
	ItemCount    int     `json:"itemCount"`
}

// AddCartItemRequest adds a product (optionally with a substituted
// alternative) to the cart.
type AddCartItemRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity"`
	AlternativeID string `json:"alternativeId"`
}

// UpdateCartQuantityRequest sets a line's quantity verbatim; zero or
// negative removes the line.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is what the cart endpoints return.
type CartResponse struct {
	Items  []CartItem `json:"items"`
	Totals CartTotals `json:"totals"`
}
