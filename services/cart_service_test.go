package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingofshadpow/SOS-Auto/config"
	"github.com/kingofshadpow/SOS-Auto/models"
)

func testShopConfig() config.ShopConfig {
	return config.ShopConfig{
		StandardShippingFee:   5.99,
		ExpressShippingFee:    9.99,
		FreeShippingThreshold: 100,
		Currency:              "EUR",
	}
}

func testCartService() *CartService {
	return NewCartService(NewMemoryCartBackend(), testCatalog(), testShopConfig())
}

func TestAddMergesOnProductAndAlternative(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	items, err := cart.Add(ctx, "c1", "p1", 1, "")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Same product, no alternative: merge
	items, err = cart.Add(ctx, "c1", "p1", 2, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	// Same product with an alternative: separate line
	items, err = cart.Add(ctx, "c1", "p1", 1, "p1-alt")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p1-alt", items[1].AlternativeID())
}

func TestAddValidations(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		_, err := cart.Add(ctx, "c1", "nope", 1, "")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("alternative from another product", func(t *testing.T) {
		_, err := cart.Add(ctx, "c1", "p2", 1, "p1-alt")
		assert.ErrorIs(t, err, ErrAlternativeInvalid)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := cart.Add(ctx, "c1", "p1", -2, "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		items, err := cart.Add(ctx, "c2", "p1", 0, "")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	_, err := cart.Add(ctx, "c1", "p1", 2, "")
	require.NoError(t, err)

	items, err := cart.SetQuantity(ctx, "c1", "p1", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	items, err = cart.SetQuantity(ctx, "c1", "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveDropsAllLinesForProduct(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	_, err := cart.Add(ctx, "c1", "p1", 1, "")
	require.NoError(t, err)
	_, err = cart.Add(ctx, "c1", "p1", 1, "p1-alt")
	require.NoError(t, err)
	_, err = cart.Add(ctx, "c1", "p3", 1, "")
	require.NoError(t, err)

	items, err := cart.Remove(ctx, "c1", "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p3", items[0].Product.ID)
}

func TestTotalsUseEffectivePrice(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	// Two units of the 12.50 alternative, not the 15.99 base price
	_, err := cart.Add(ctx, "c1", "p1", 2, "p1-alt")
	require.NoError(t, err)

	totals, err := cart.Totals(ctx, "c1", ShippingStandard)
	require.NoError(t, err)
	assert.InDelta(t, 25.00, totals.Subtotal, 0.001)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestTotalsShipping(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	t.Run("standard fee below threshold", func(t *testing.T) {
		_, err := cart.Add(ctx, "c1", "p1", 1, "")
		require.NoError(t, err)

		totals, err := cart.Totals(ctx, "c1", ShippingStandard)
		require.NoError(t, err)
		assert.InDelta(t, 5.99, totals.ShippingCost, 0.001)
		assert.False(t, totals.FreeShipping)
		assert.InDelta(t, totals.Subtotal+5.99, totals.Total, 0.001)
	})

	t.Run("standard waived above threshold", func(t *testing.T) {
		_, err := cart.Add(ctx, "c2", "p3", 1, "") // 129.99
		require.NoError(t, err)

		totals, err := cart.Totals(ctx, "c2", ShippingStandard)
		require.NoError(t, err)
		assert.Zero(t, totals.ShippingCost)
		assert.True(t, totals.FreeShipping)
	})

	t.Run("express is never waived", func(t *testing.T) {
		totals, err := cart.Totals(ctx, "c2", ShippingExpress)
		require.NoError(t, err)
		assert.InDelta(t, 9.99, totals.ShippingCost, 0.001)
		assert.False(t, totals.FreeShipping)
	})

	t.Run("exactly at threshold still pays", func(t *testing.T) {
		totals := cart.TotalsFor([]models.CartItem{
			{Product: models.Product{ID: "x", Price: 100}, Quantity: 1},
		}, ShippingStandard)
		assert.InDelta(t, 5.99, totals.ShippingCost, 0.001)
	})
}

func TestClearKeepsFilters(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	_, err := cart.Add(ctx, "c1", "p1", 1, "")
	require.NoError(t, err)

	filters := models.FilterCriteria{Brand: "Bosch", PriceRange: models.DefaultPriceRange()}
	require.NoError(t, cart.SaveFilters(ctx, "c1", filters))

	require.NoError(t, cart.Clear(ctx, "c1"))

	items, err := cart.Items(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, items)

	snap, err := cart.backend.Load(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "Bosch", snap.Filters.Brand)
}

func TestCartsAreIsolatedByID(t *testing.T) {
	cart := testCartService()
	ctx := context.Background()

	_, err := cart.Add(ctx, "c1", "p1", 1, "")
	require.NoError(t, err)

	items, err := cart.Items(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, items)
}
