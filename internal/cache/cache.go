// Package cache is a read-through Redis cache for player list responses,
// keyed by the canonical query encoding. Redis being down degrades to a
// pass-through: every lookup misses, every store is dropped, no error
// reaches the caller.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"roster-browser/internal/api"
	"roster-browser/internal/common/logger"
	"roster-browser/internal/common/metrics"
	"roster-browser/internal/roster"
)

// DefaultTTL keeps listings fresh enough for a browsing session.
const DefaultTTL = 5 * time.Minute

const keyNamespace = "cache:players:"

// ResultCache caches SearchResponse payloads. A nil client disables the
// cache entirely (every Get misses, every Set is a no-op).
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func New(client *redis.Client, ttl time.Duration, log logger.Logger) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{client: client, ttl: ttl, logger: log}
}

// NewDisabled returns a cache that never hits. Used when caching is turned
// off in config.
func NewDisabled(log logger.Logger) *ResultCache {
	return &ResultCache{logger: log}
}

// key returns the namespaced cache key for q, or "" when q has no stable
// encoding. Unkeyable queries bypass the cache.
func key(q roster.Query) string {
	ck := q.CacheKey()
	if ck == "" {
		return ""
	}
	return keyNamespace + ck
}

// Get returns the cached response for q, or (nil, false) on miss or any
// Redis failure.
func (c *ResultCache) Get(ctx context.Context, q roster.Query) (*api.SearchResponse, bool) {
	if c.client == nil {
		return nil, false
	}

	k := key(q)
	if k == "" {
		return nil, false
	}
	raw, err := c.client.Get(ctx, k).Bytes()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return nil, false
	}
	if err != nil {
		c.logger.Warn("Cache lookup failed, treating as miss", map[string]interface{}{
			"key":   k,
			"error": err.Error(),
		})
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var resp api.SearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.Warn("Cache entry undecodable, evicting", map[string]interface{}{
			"key":   k,
			"error": err.Error(),
		})
		c.client.Del(ctx, k)
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	c.logger.Debug("Cache hit", map[string]interface{}{"key": k})
	return &resp, true
}

// Set stores resp under q's key with the configured TTL. Failures are
// logged and swallowed.
func (c *ResultCache) Set(ctx context.Context, q roster.Query, resp *api.SearchResponse) {
	if c.client == nil || resp == nil {
		return
	}
	k := key(q)
	if k == "" {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("Cache serialization failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := c.client.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache store failed", map[string]interface{}{
			"key":   k,
			"error": err.Error(),
		})
		return
	}
	c.logger.Debug("Cache set", map[string]interface{}{"key": k, "ttl": c.ttl.String()})
}

// Invalidate drops every cached listing. Exposed for operational tooling;
// the browse flow itself never mutates player data.
func (c *ResultCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, keyNamespace+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
