package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kingofshadpow/SOS-Auto/models"
)

const cartKeyPrefix = "cart:"

// RedisCartBackend snapshots cart blobs into Redis so a cart survives a
// page reload. Each blob lives under its own key, independent of the
// auth session, and expires after the configured idle TTL.
type RedisCartBackend struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartBackend(client *redis.Client, ttl time.Duration) *RedisCartBackend {
	return &RedisCartBackend{client: client, ttl: ttl}
}

func (b *RedisCartBackend) Load(ctx context.Context, cartID string) (*models.CartSnapshot, error) {
	raw, err := b.client.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (b *RedisCartBackend) Save(ctx context.Context, cartID string, snap *models.CartSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return b.client.Set(ctx, cartKeyPrefix+cartID, raw, b.ttl).Err()
}

func (b *RedisCartBackend) Delete(ctx context.Context, cartID string) error {
	return b.client.Del(ctx, cartKeyPrefix+cartID).Err()
}
