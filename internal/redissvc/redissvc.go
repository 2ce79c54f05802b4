package redissvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
	"github.com/regtech-tools/y9c-dashboard/internal/repo"
)

// Cache stores recently fetched filing slices so a filter tweak does not
// re-query the hosted store. A cache miss or an unreachable redis degrades
// to a direct database query, never to an error.
type Cache struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ctx context.Context, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ctx: ctx, ttl: ttl}
}

// cachedFetch is the stored payload: the capped row slice plus the match
// count before the cap, so truncation survives a cache hit.
type cachedFetch struct {
	Filings []models.Filing `json:"filings"`
	Total   int             `json:"total"`
}

// FilterKey derives a stable cache key from the fetch filter.
func FilterKey(f repo.FilingFilter) string {
	payload, _ := json.Marshal(f)
	sum := sha256.Sum256(payload)
	return "y9c:filings:" + hex.EncodeToString(sum[:8])
}

// GetFilings returns the cached slice and pre-cap total for key, with a hit
// indicator.
func (c *Cache) GetFilings(key string) ([]models.Filing, int, bool) {
	if c == nil || c.rdb == nil {
		return nil, 0, false
	}
	data, err := c.rdb.Get(c.ctx, key).Bytes()
	if err != nil {
		return nil, 0, false
	}
	var entry cachedFetch
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Printf("cache: corrupt entry %s dropped: %v", key, err)
		c.rdb.Del(c.ctx, key)
		return nil, 0, false
	}
	return entry.Filings, entry.Total, true
}

// SetFilings stores the slice and its pre-cap total under key with the
// configured TTL.
func (c *Cache) SetFilings(key string, filings []models.Filing, total int) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(cachedFetch{Filings: filings, Total: total})
	if err != nil {
		return
	}
	if err := c.rdb.Set(c.ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}

// Flush clears all cached filing slices.
func (c *Cache) Flush() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(c.ctx, 0, "y9c:filings:*", 0).Iterator()
	for iter.Next(c.ctx) {
		if err := c.rdb.Del(c.ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache: del %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}
