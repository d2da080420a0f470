package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingofshadpow/SOS-Auto/models"
)

func testOrderService(t *testing.T) *OrderService {
	t.Helper()
	svc, err := NewOrderService(nil)
	require.NoError(t, err)
	return svc
}

func testCheckoutParams() CreateOrderParams {
	return CreateOrderParams{
		UserID: "u1",
		Items: []models.CartItem{
			{Product: models.Product{ID: "p1", Name: "Filtre à Huile", Brand: "Bosch", Price: 15.99}, Quantity: 2},
		},
		Totals: models.CartTotals{Subtotal: 31.98, ShippingCost: 5.99, Total: 37.97, ItemCount: 2},
		ShippingAddress: models.ShippingAddress{
			FirstName: "Jean", LastName: "Dupont",
			Street: "12 rue de la Paix", City: "Paris", PostalCode: "75002", Country: "France",
		},
		PaymentMethod:  "card",
		ShippingMethod: ShippingStandard,
	}
}

func TestCreateOrder(t *testing.T) {
	svc := testOrderService(t)

	order, err := svc.Create(testCheckoutParams())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"), "id %q should carry the ORD prefix", order.ID)
	assert.Contains(t, order.ID, time.Now().Format("2006"))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 15.99, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	require.NotNil(t, order.EstimatedDelivery)
	assert.True(t, order.EstimatedDelivery.After(order.CreatedAt))
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	svc := testOrderService(t)

	params := testCheckoutParams()
	params.Items = nil

	_, err := svc.Create(params)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateOrderSnapshotsAlternative(t *testing.T) {
	svc := testOrderService(t)

	alt := models.Product{ID: "p1-alt", Name: "Filtre à Huile Eco", Brand: "Mann", Price: 12.50}
	params := testCheckoutParams()
	params.Items = []models.CartItem{
		{
			Product:             models.Product{ID: "p1", Name: "Filtre à Huile", Brand: "Bosch", Price: 15.99},
			Quantity:            1,
			SelectedAlternative: &alt,
		},
	}

	order, err := svc.Create(params)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1-alt", order.Items[0].ProductID)
	assert.Equal(t, "Mann", order.Items[0].Brand)
	assert.Equal(t, 12.50, order.Items[0].Price)
}

func TestOrderIDsAreUnique(t *testing.T) {
	svc := testOrderService(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		order, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestOrderIsImmutableAfterCreation(t *testing.T) {
	svc := testOrderService(t)

	params := testCheckoutParams()
	order, err := svc.Create(params)
	require.NoError(t, err)

	// Mutating the caller's cart items must not reach the stored order
	params.Items[0].Product.Price = 999

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.99, got.Items[0].Price)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("happy path is forward-only", func(t *testing.T) {
		svc := testOrderService(t)
		order, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)

		for _, status := range []string{
			models.OrderStatusConfirmed,
			models.OrderStatusProcessing,
			models.OrderStatusShipped,
			models.OrderStatusDelivered,
		} {
			got, err := svc.UpdateStatus(order.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, got.Status)
		}
	})

	t.Run("skipping forward is allowed", func(t *testing.T) {
		svc := testOrderService(t)
		order, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)

		got, err := svc.UpdateStatus(order.ID, models.OrderStatusShipped)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, got.Status)
	})

	t.Run("backwards is rejected", func(t *testing.T) {
		svc := testOrderService(t)
		order, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)

		_, err = svc.UpdateStatus(order.ID, models.OrderStatusShipped)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(order.ID, models.OrderStatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancel from any non-terminal state", func(t *testing.T) {
		svc := testOrderService(t)
		order, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)

		_, err = svc.UpdateStatus(order.ID, models.OrderStatusProcessing)
		require.NoError(t, err)

		got, err := svc.UpdateStatus(order.ID, models.OrderStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, got.Status)
	})

	t.Run("terminal states are locked", func(t *testing.T) {
		svc := testOrderService(t)

		delivered, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)
		_, err = svc.UpdateStatus(delivered.ID, models.OrderStatusDelivered)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(delivered.ID, models.OrderStatusCancelled)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		cancelled, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)
		_, err = svc.UpdateStatus(cancelled.ID, models.OrderStatusCancelled)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(cancelled.ID, models.OrderStatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := testOrderService(t)
		order, err := svc.Create(testCheckoutParams())
		require.NoError(t, err)

		_, err = svc.UpdateStatus(order.ID, "lost")
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := testOrderService(t)
		_, err := svc.UpdateStatus("ORD-2026-NOPE", models.OrderStatusConfirmed)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestListByUser(t *testing.T) {
	svc := testOrderService(t)

	first, err := svc.Create(testCheckoutParams())
	require.NoError(t, err)

	other := testCheckoutParams()
	other.UserID = "u2"
	_, err = svc.Create(other)
	require.NoError(t, err)

	second, err := svc.Create(testCheckoutParams())
	require.NoError(t, err)

	orders := svc.ListByUser("u1")
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)

	assert.Len(t, svc.ListAll(), 3)
	assert.Empty(t, svc.ListByUser("nobody"))
}

func TestSeedOrdersAreServed(t *testing.T) {
	seed := []models.Order{
		{ID: "ORD-2024-001", UserID: "1", Status: models.OrderStatusDelivered, Total: 79.89},
	}
	svc, err := NewOrderService(seed)
	require.NoError(t, err)

	got, err := svc.GetByID("ORD-2024-001")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
}
