package metadata_cache

import (
	"sync"
	"time"

	"github.com/kingofshadpow/SOS-Auto/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The sidebar metadata (brands, categories, price bounds, availability)
// is recomputed from the full catalog; cache it between requests.

type entry struct {
	data      models.FilterMetadata
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (models.FilterMetadata, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.data, true
	}
	return models.FilterMetadata{}, false
}

func Set(data models.FilterMetadata) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached metadata (used by tests; the catalog
// itself never changes at runtime).
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
