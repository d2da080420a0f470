package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingofshadpow/SOS-Auto/models"
)

func testCatalog() *CatalogService {
	return NewCatalogService([]models.Product{
		{
			ID: "p1", Name: "Filtre à Huile", Brand: "Bosch",
			Category: "Filtration", SubCategory: "Huile",
			PartNumber: "FH-2847", Price: 15.99, Stock: 10,
			Description: "Filtre à huile haute performance",
			Compatibility: models.Compatibility{
				Brands: []string{"Renault"},
				Models: []string{"Clio IV", "Megane III"},
				Years:  []int{2015, 2016, 2017},
			},
			Alternatives: []models.Product{
				{ID: "p1-alt", Name: "Filtre à Huile Eco", Brand: "Mann", PartNumber: "FH-2847-M", Price: 12.50, Stock: 5},
			},
		},
		{
			ID: "p2", Name: "Plaquettes de Frein", Brand: "Bosch",
			Category: "Freinage", SubCategory: "Plaquettes",
			PartNumber: "PF-1120", Price: 45.99, Stock: 0,
			Description: "Plaquettes avant céramique",
			Compatibility: models.Compatibility{
				Brands: []string{"Peugeot"},
				Models: []string{"208", "308"},
				Years:  []int{2018, 2019, 2020},
			},
		},
		{
			ID: "p3", Name: "Batterie 12V", Brand: "Varta",
			Category: "Electricité", SubCategory: "Batteries",
			PartNumber: "BAT-7402", Price: 129.99, Stock: 3,
			Description: "Batterie démarrage 70Ah",
			Compatibility: models.Compatibility{
				Brands: []string{"Renault", "Peugeot"},
				Models: []string{"Clio IV", "208"},
				Years:  []int{2016, 2017, 2018},
			},
		},
	})
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	catalog := testCatalog()

	got, err := catalog.Filter(models.FilterCriteria{})
	require.NoError(t, err)

	assert.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	assert.Equal(t, "p3", got[2].ID)
}

func TestFilterIsIdempotent(t *testing.T) {
	catalog := testCatalog()
	criteria := models.FilterCriteria{Brand: "Bosch"}

	first, err := catalog.Filter(criteria)
	require.NoError(t, err)
	second, err := catalog.Filter(criteria)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFilterNarrowsSequentially(t *testing.T) {
	catalog := testCatalog()

	t.Run("brand", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{Brand: "Bosch"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("brand and category", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{Brand: "Bosch", Category: "Freinage"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p2", got[0].ID)
	})

	t.Run("year", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{Year: 2015})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("model is substring and case-insensitive", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{Model: "clio"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("in stock only", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{InStock: true})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, p := range got {
			assert.Greater(t, p.Stock, 0)
		}
	})
}

func TestFilterSearchRequiresAllTerms(t *testing.T) {
	catalog := testCatalog()

	got, err := catalog.Filter(models.FilterCriteria{SearchQuery: "filtre huile"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// One matching term is not enough
	got, err = catalog.Filter(models.FilterCriteria{SearchQuery: "filtre frein"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterSearchMatchesPartNumber(t *testing.T) {
	catalog := testCatalog()

	got, err := catalog.Filter(models.FilterCriteria{SearchQuery: "bat-7402"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestFilterPriceRange(t *testing.T) {
	catalog := testCatalog()

	t.Run("bounds are inclusive", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{
			PriceRange: models.PriceRange{Min: 15.99, Max: 45.99},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := catalog.Filter(models.FilterCriteria{
			PriceRange: models.PriceRange{Min: 100, Max: 50},
		})
		assert.ErrorIs(t, err, ErrInvalidPriceRange)
	})

	t.Run("zero range falls back to defaults", func(t *testing.T) {
		got, err := catalog.Filter(models.FilterCriteria{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestSearchByPartNumber(t *testing.T) {
	catalog := testCatalog()

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := catalog.SearchByPartNumber("fh-28")
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("ignores filter-style fields entirely", func(t *testing.T) {
		got := catalog.SearchByPartNumber("PF-1120")
		require.Len(t, got, 1)
		assert.Equal(t, "p2", got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, catalog.SearchByPartNumber("ZZZ-999"))
	})
}

func TestGetByIDIndexesAlternatives(t *testing.T) {
	catalog := testCatalog()

	alt, err := catalog.GetByID("p1-alt")
	require.NoError(t, err)
	assert.Equal(t, "Mann", alt.Brand)

	_, err = catalog.GetByID("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFilterMetadata(t *testing.T) {
	catalog := testCatalog()
	meta := catalog.FilterMetadata()

	assert.Equal(t, []string{"Bosch", "Varta"}, meta.Brands)
	require.Len(t, meta.Categories, 3)
	assert.Equal(t, "Filtration", meta.Categories[0].Name)
	assert.Equal(t, []string{"Huile"}, meta.Categories[0].SubCategories)

	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, 15.99, meta.PriceRange.Min)
	assert.Equal(t, 129.99, meta.PriceRange.Max)

	require.NotNil(t, meta.Availability)
	assert.Equal(t, 2, meta.Availability.InStock)
	assert.Equal(t, 1, meta.Availability.OutOfStock)

	require.NotNil(t, meta.Years)
	assert.Equal(t, 2015, meta.Years.Min)
	assert.Equal(t, 2020, meta.Years.Max)

	assert.Contains(t, meta.Models["Renault"], "Clio IV")
}
