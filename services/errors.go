package services

import "errors"

// Sentinel errors surfaced to the controllers. Everything here is
// recoverable; controllers translate them into HTTP statuses.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrAlternativeInvalid = errors.New("alternative does not belong to this product")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidPriceRange  = errors.New("price range minimum exceeds maximum")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmptyCart          = errors.New("cart is empty")
)
