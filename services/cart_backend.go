package services

import (
	"context"
	"sync"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// CartBackend stores cart blobs keyed by cart id. Writes are
// last-write-wins snapshots; there is exactly one writer per cart (the
// request handling it), so no transactional guarantees are needed.
type CartBackend interface {
	Load(ctx context.Context, cartID string) (*models.CartSnapshot, error)
	Save(ctx context.Context, cartID string, snap *models.CartSnapshot) error
	Delete(ctx context.Context, cartID string) error
}

// MemoryCartBackend keeps carts in-process. Used by tests and as the
// fallback when Redis is unreachable; durability is lost, not behavior.
type MemoryCartBackend struct {
	mu    sync.RWMutex
	carts map[string]models.CartSnapshot
}

func NewMemoryCartBackend() *MemoryCartBackend {
	return &MemoryCartBackend{carts: make(map[string]models.CartSnapshot)}
}

func (b *MemoryCartBackend) Load(_ context.Context, cartID string) (*models.CartSnapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	snap, ok := b.carts[cartID]
	if !ok {
		return nil, nil
	}
	// Copy items so callers never alias the stored slice.
	out := models.CartSnapshot{
		Items:   append([]models.CartItem(nil), snap.Items...),
		Filters: snap.Filters,
	}
	return &out, nil
}

func (b *MemoryCartBackend) Save(_ context.Context, cartID string, snap *models.CartSnapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.carts[cartID] = models.CartSnapshot{
		Items:   append([]models.CartItem(nil), snap.Items...),
		Filters: snap.Filters,
	}
	return nil
}

func (b *MemoryCartBackend) Delete(_ context.Context, cartID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.carts, cartID)
	return nil
}
