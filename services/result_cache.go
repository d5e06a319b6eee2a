package services

import (
	"context"
	"fmt"
	"time"

	"stylemateapi/metrics"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog"
)

// ResultCache keeps encoded generation results for a while. Callers decide
// what is worth storing; a miss never calls anything on its own, so every
// request that misses runs its own model call under its own context.
type ResultCache struct {
	cache *cache.Cache[[]byte]
	ttl   time.Duration
}

func NewResultCache(ttl time.Duration) (*ResultCache, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 26, // 64MB
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	return &ResultCache{
		cache: cache.New[[]byte](ristretto_store.NewRistretto(ristrettoCache)),
		ttl:   ttl,
	}, nil
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	metrics.ResultCacheRequests.Inc()
	value, err := c.cache.Get(ctx, key)
	if err != nil || len(value) == 0 {
		metrics.ResultCacheMisses.Inc()
		return nil, false
	}
	return value, true
}

// Set stores value under key. Writes become visible asynchronously.
func (c *ResultCache) Set(ctx context.Context, key string, value []byte) {
	err := c.cache.Set(ctx, key, value, store.WithExpiration(c.ttl), store.WithCost(int64(len(value))))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to cache generation result")
	}
}
