package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kingofshadpow/SOS-Auto/config"
	"github.com/kingofshadpow/SOS-Auto/data"
	"github.com/kingofshadpow/SOS-Auto/middleware"
	"github.com/kingofshadpow/SOS-Auto/routes/admin_routes"
	"github.com/kingofshadpow/SOS-Auto/routes/storefront_routes"
	"github.com/kingofshadpow/SOS-Auto/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	shopCfg := config.LoadShopConfig()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Redis backs carts, rate limiting and activity logs. Without it
	// the shop still runs: carts fall back to process memory and the
	// limiter lets everything through.
	var cartBackend services.CartBackend
	if err := config.ConnectRedis(); err != nil {
		log.Printf("⚠️ Redis unavailable, carts held in memory: %v", err)
		cartBackend = services.NewMemoryCartBackend()
	} else {
		cartBackend = services.NewRedisCartBackend(config.RedisClient, config.CartTTL())
	}

	// Seed the in-process stores with the demo dataset
	catalog := services.InitCatalogService(data.Products())
	services.InitCartService(cartBackend, catalog, shopCfg)
	services.InitUserDirectory(data.Users())
	if _, err := services.InitOrderService(data.Orders()); err != nil {
		log.Fatalf("Failed to initialize order service: %v", err)
	}
	log.Println("✅ Stores seeded")

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.CartSession())

	// Register API routes
	api := router.Group("/api/v1")

	// Back office (at /api/v1/admin prefix)
	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	storefront_routes.SetupCatalogRoutes(api)
	storefront_routes.SetupCartRoutes(api)
	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupUserRoutes(api)

	addr := config.GetServerAddr()
	fmt.Printf("🚀 Server is running on http://localhost%s\n", addr)
	router.Run(addr)
}
