package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadata_cache "github.com/kingofshadpow/SOS-Auto/cache"
	"github.com/kingofshadpow/SOS-Auto/config"
	"github.com/kingofshadpow/SOS-Auto/data"
	"github.com/kingofshadpow/SOS-Auto/models"
	"github.com/kingofshadpow/SOS-Auto/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := services.InitCatalogService(data.Products())
	services.InitCartService(services.NewMemoryCartBackend(), catalog, config.GetShopConfig())
	metadata_cache.Invalidate()

	router := gin.New()
	store := router.Group("/api/v1/store")
	store.GET("/products", GetProducts)
	store.GET("/products/search", SearchByPartNumber)
	store.GET("/products/:id", GetProductByID)
	store.GET("/filters/metadata", GetFilterMetadata)
	return router
}

func doGet(t *testing.T, router *gin.Engine, url string) (*httptest.ResponseRecorder, models.ApiResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetProducts(t *testing.T) {
	router := setupRouter(t)

	t.Run("unfiltered list is paginated", func(t *testing.T) {
		w, body := doGet(t, router, "/api/v1/store/products?limit=5")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, body.Meta)
		assert.Equal(t, 5, body.Meta.Limit)
		assert.Greater(t, body.Meta.Total, 5)
	})

	t.Run("brand filter narrows", func(t *testing.T) {
		w, body := doGet(t, router, "/api/v1/store/products?brand=Bosch")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, body.Meta)
		assert.Greater(t, body.Meta.Total, 0)

		raw, err := json.Marshal(body.Data)
		require.NoError(t, err)
		var items []models.StorefrontProductResponse
		require.NoError(t, json.Unmarshal(raw, &items))
		for _, item := range items {
			assert.Equal(t, "Bosch", item.Brand)
		}
	})

	t.Run("inverted price range is a 400", func(t *testing.T) {
		w, body := doGet(t, router, "/api/v1/store/products?minPrice=100&maxPrice=10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, body.Error)
	})
}

func TestSearchByPartNumberEndpoint(t *testing.T) {
	router := setupRouter(t)

	t.Run("missing query", func(t *testing.T) {
		w, _ := doGet(t, router, "/api/v1/store/products/search")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short query returns empty list", func(t *testing.T) {
		w, body := doGet(t, router, "/api/v1/store/products/search?part=ab")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Query too short", body.Message)

		raw, err := json.Marshal(body.Data)
		require.NoError(t, err)
		var items []models.StorefrontProductResponse
		require.NoError(t, json.Unmarshal(raw, &items))
		assert.Empty(t, items)
	})

	t.Run("long enough query searches", func(t *testing.T) {
		w, body := doGet(t, router, "/api/v1/store/products/search?part=XXXX-NOPE")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Part number search results", body.Message)
	})
}

func TestGetProductByIDEndpoint(t *testing.T) {
	router := setupRouter(t)

	t.Run("found", func(t *testing.T) {
		w, _ := doGet(t, router, "/api/v1/store/products/prod-001")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		w, body := doGet(t, router, "/api/v1/store/products/prod-404")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.True(t, body.Error)
	})
}

func TestGetFilterMetadataEndpoint(t *testing.T) {
	router := setupRouter(t)

	w, body := doGet(t, router, "/api/v1/store/filters/metadata")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Filter metadata fetched", body.Message)

	// Second hit is served from the cache
	w, body = doGet(t, router, "/api/v1/store/filters/metadata")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Filter metadata fetched (cached)", body.Message)
}
