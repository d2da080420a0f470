package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials Redis from REDIS_URL. The cart store and the rate
// limiter fall back to in-process state when this returns an error, so
// a missing Redis only costs durability, not functionality.
func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return err
	}

	client := redis.NewClient(opt)

	res, err := client.Ping(Ctx).Result()
	if err != nil {
		return err
	}

	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
	return nil
}
