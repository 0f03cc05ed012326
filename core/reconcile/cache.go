package reconcile

import (
	"context"
	"sync"
	"time"

	"thumbnail-manager/core/storage"

	"golang.org/x/sync/singleflight"
	"go.uber.org/zap"
)

type cachedPlan struct {
	plan *Plan
	ttl  time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *cachedPlan) IsExpired() bool {
	if c.ttl == 0 {
		return true // No caching
	}
	return time.Since(c.plan.Built) > c.ttl
}

// cacheStore holds scan plans keyed by spec cache key.
type cacheStore struct {
	mu    sync.RWMutex
	plans map[string]*cachedPlan
	sf    singleflight.Group
}

// globalCacheStore is the singleton cache store for all scans.
var globalCacheStore = &cacheStore{
	plans: make(map[string]*cachedPlan),
}

// GetOrCollect returns a cached plan for spec, or runs Collect if none is
// fresh. Concurrent callers for the same spec share a single scan.
// Limited specs are never cached.
func GetOrCollect(ctx context.Context, spec *Spec, client storage.Client, bucket string, logger *zap.Logger) (*Plan, error) {
	if spec.CacheTTL <= 0 || spec.Limit > 0 {
		return Collect(ctx, spec, client, bucket, logger)
	}

	cacheKey := spec.CacheKey(bucket)

	// Fast path: check if cache exists and is fresh
	globalCacheStore.mu.RLock()
	cached, exists := globalCacheStore.plans[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !cached.IsExpired() {
		return cached.plan, nil
	}

	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		globalCacheStore.mu.RLock()
		cached, exists := globalCacheStore.plans[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !cached.IsExpired() {
			return cached.plan, nil
		}

		plan, err := Collect(ctx, spec, client, bucket, logger)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.plans[cacheKey] = &cachedPlan{plan: plan, ttl: spec.CacheTTL}
		globalCacheStore.mu.Unlock()

		return plan, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Plan), nil
}

// InvalidateCache removes the cached plan for spec and bucket.
func InvalidateCache(spec *Spec, bucket string) {
	cacheKey := spec.CacheKey(bucket)
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.plans, cacheKey)
	globalCacheStore.mu.Unlock()
}
