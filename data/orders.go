package data

import (
	"time"

	"github.com/kingofshadpow/SOS-Auto/models"
)

func timePtr(t time.Time) *time.Time { return &t }

// Orders returns the demo order history for the seeded client account.
func Orders() []models.Order {
	return []models.Order{
		{
			ID:     "ORD-2024-001",
			UserID: "1",
			Items: []models.OrderItem{
				{
					ProductID: "prod-002",
					Name:      "Plaquettes de frein avant",
					Brand:     "Bosch",
					Image:     "/images/products/plaquettes-bosch.jpg",
					Price:     45.99,
					Quantity:  1,
				},
				{
					ProductID: "prod-001-alt1",
					Name:      "Filtre à huile",
					Brand:     "Mann",
					Image:     "/images/products/filtre-huile-mann.jpg",
					Price:     12.50,
					Quantity:  2,
				},
			},
			Subtotal: 70.99,
			Shipping: 8.90,
			Total:    79.89,
			Status:   models.OrderStatusDelivered,
			ShippingAddress: models.ShippingAddress{
				FirstName:  "Jean",
				LastName:   "Dupont",
				Street:     "123 Rue de la Paix",
				City:       "Paris",
				PostalCode: "75001",
				Country:    "France",
				Phone:      "06 12 34 56 78",
			},
			PaymentMethod:     "Carte bancaire",
			CreatedAt:         time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
			EstimatedDelivery: timePtr(time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)),
		},
		{
			ID:     "ORD-2024-002",
			UserID: "1",
			Items: []models.OrderItem{
				{
					ProductID: "prod-004",
					Name:      "Amortisseur arrière",
					Brand:     "Monroe",
					Image:     "/images/products/amortisseur-monroe.jpg",
					Price:     89.99,
					Quantity:  2,
				},
			},
			Subtotal: 179.98,
			Shipping: 12.90,
			Total:    192.88,
			Status:   models.OrderStatusShipped,
			ShippingAddress: models.ShippingAddress{
				FirstName:  "Jean",
				LastName:   "Dupont",
				Street:     "123 Rue de la Paix",
				City:       "Paris",
				PostalCode: "75001",
				Country:    "France",
				Phone:      "06 12 34 56 78",
			},
			PaymentMethod:     "PayPal",
			CreatedAt:         time.Date(2024, 2, 1, 9, 15, 0, 0, time.UTC),
			EstimatedDelivery: timePtr(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
		},
	}
}
