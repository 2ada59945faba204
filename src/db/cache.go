package db

import (
	"kakeibo-server/src/models"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const healthKey = "health"

// HealthCache keeps the last health report for a short TTL so that frequent
// probes do not each hit the database.
type HealthCache struct {
	cache *ristretto.Cache[string, models.Health]
	ttl   time.Duration
}

// NewHealthCache returns a cache that never stores anything when ttl is zero.
func NewHealthCache(ttl time.Duration) (*HealthCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, models.Health]{
		NumCounters:        100, // number of keys to track frequency of
		MaxCost:            10,
		BufferItems:        64, // number of keys per Get buffer
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &HealthCache{cache: cache, ttl: ttl}, nil
}

func (c *HealthCache) Get() (models.Health, bool) {
	if c == nil || c.ttl <= 0 {
		return models.Health{}, false
	}
	return c.cache.Get(healthKey)
}

func (c *HealthCache) Set(h models.Health) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.cache.SetWithTTL(healthKey, h, 1, c.ttl)
	c.cache.Wait()
}

func (c *HealthCache) Clear() {
	if c == nil {
		return
	}
	c.cache.Del(healthKey)
}

func (c *HealthCache) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
