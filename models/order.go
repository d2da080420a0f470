package models

import "time"

// Order statuses. Happy path is pending → confirmed → processing →
// shipped → delivered; cancelled is reachable from any non-terminal
// state. delivered and cancelled are terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a snapshot of a cart line at checkout time. It copies
// price, name and brand so later catalog changes never alter history.
type OrderItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ShippingAddress is captured verbatim on the order.
type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Order is a customer order. Items are immutable once created; only
// Status may change afterwards, through the transition rules.
type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Items             []OrderItem     `json:"items"`
	Subtotal          float64         `json:"subtotal"`
	Shipping          float64         `json:"shipping"`
	Total             float64         `json:"total"`
	Status            string          `json:"status"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	PaymentMethod     string          `json:"paymentMethod"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
}

// CreateOrderRequest drives checkout. Line items come from the caller's
// current cart, not from the request body.
type CreateOrderRequest struct {
	ShippingMethod  string          `json:"shippingMethod" binding:"omitempty,oneof=standard express"`
	ShippingAddress ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
}

// UpdateOrderStatusRequest is the admin status-change payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

// OrderHistoryResponse is the trimmed list view for order history.
type OrderHistoryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToHistoryResponse trims an order down to the history list row.
func (o *Order) ToHistoryResponse() OrderHistoryResponse {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return OrderHistoryResponse{
		ID:        o.ID,
		Status:    o.Status,
		Total:     o.Total,
		ItemCount: count,
		CreatedAt: o.CreatedAt,
	}
}
