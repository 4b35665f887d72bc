package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// MemoryPayloadCache is the in-process payload cache used when Redis is
// not configured.
type MemoryPayloadCache struct {
	mu        sync.RWMutex
	entries   map[string]*models.CachedPayload
	retention time.Duration
	now       func() time.Time
}

// NewMemoryPayloadCache creates an empty cache. A zero retention keeps
// entries forever.
func NewMemoryPayloadCache(retention time.Duration) *MemoryPayloadCache {
	return &MemoryPayloadCache{
		entries:   make(map[string]*models.CachedPayload),
		retention: retention,
		now:       time.Now,
	}
}

// Get returns the payload stored under key or models.ErrCacheMiss.
func (c *MemoryPayloadCache) Get(ctx context.Context, key string) (*models.CachedPayload, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.entries[key]
	if !ok || c.expired(p) {
		return nil, models.ErrCacheMiss
	}
	return p, nil
}

// Set stores a copy of data under key.
func (c *MemoryPayloadCache) Set(ctx context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &models.CachedPayload{Data: buf, StoredAt: c.now()}
	return nil
}

// ClearExpired drops entries older than the retention period.
func (c *MemoryPayloadCache) ClearExpired(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, p := range c.entries {
		if c.expired(p) {
			delete(c.entries, key)
			removed++
		}
	}

	logger.Log.Infow("cleared expired payload cache entries", "count", removed)
	return removed
}

func (c *MemoryPayloadCache) expired(p *models.CachedPayload) bool {
	return c.retention > 0 && c.now().Sub(p.StoredAt) >= c.retention
}
