package data

import (
	"time"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// Users returns the seeded demo accounts. Any password logs these in;
// the directory only checks the email.
func Users() []models.User {
	return []models.User{
		{
			ID:        "1",
			Email:     "client@test.com",
			FirstName: "Jean",
			LastName:  "Dupont",
			Role:      models.RoleClient,
			Phone:     strPtr("06 12 34 56 78"),
			Address: &models.UserAddress{
				Street:     "123 Rue de la Paix",
				City:       "Paris",
				PostalCode: "75001",
				Country:    "France",
			},
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Email:     "admin@test.com",
			FirstName: "Marie",
			LastName:  "Martin",
			Role:      models.RoleAdmin,
			Phone:     strPtr("06 98 76 54 32"),
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}
}
