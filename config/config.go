package config

import (
	"os"
	"time"

	"github.com/spf13/cast"
)

// ShopConfig holds the storefront money settings. Observed defaults:
// 5,99€ standard shipping waived above 100€, 9,99€ express (never
// waived). All overridable from the environment.
type ShopConfig struct {
	StandardShippingFee   float64
	ExpressShippingFee    float64
	FreeShippingThreshold float64
	Currency              string
}

var shopConfig ShopConfig

// LoadShopConfig reads shop settings from the environment.
func LoadShopConfig() ShopConfig {
	shopConfig = ShopConfig{
		StandardShippingFee:   cast.ToFloat64(getEnv("SHIPPING_FEE_STANDARD", "5.99")),
		ExpressShippingFee:    cast.ToFloat64(getEnv("SHIPPING_FEE_EXPRESS", "9.99")),
		FreeShippingThreshold: cast.ToFloat64(getEnv("FREE_SHIPPING_THRESHOLD", "100")),
		Currency:              getEnv("SHOP_CURRENCY", "EUR"),
	}
	return shopConfig
}

// GetShopConfig returns the loaded shop settings (defaults if
// LoadShopConfig was never called).
func GetShopConfig() ShopConfig {
	if shopConfig == (ShopConfig{}) {
		return LoadShopConfig()
	}
	return shopConfig
}

// GetFrontendURL returns the storefront origin for CORS.
func GetFrontendURL() string {
	return getEnv("FRONTEND_URL", "http://localhost:3000")
}

// GetServerAddr returns the listen address.
func GetServerAddr() string {
	return ":" + getEnv("PORT", "8081")
}

// CartTTL is how long an idle cart blob is retained.
func CartTTL() time.Duration {
	return cast.ToDuration(getEnv("CART_TTL", "720h"))
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
