package dictionary

import (
	"context"
	"fmt"

	"github.com/Yiling-J/theine-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultCacheSize = 100000

var (
	dictionaryCacheTotalCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "anagram",
		Name:      "dictionary_cache_total_count",
		Help:      "The total number of dictionary queries that went through the cache.",
	})

	dictionaryCacheHitCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "anagram",
		Name:      "dictionary_cache_hit_count",
		Help:      "The total number of dictionary cache hits.",
	})
)

// Cached memoises answers of another Dictionary. Errors are not cached.
type Cached struct {
	delegate Dictionary
	cache    *theine.Cache[string, bool]
}

var _ Dictionary = (*Cached)(nil)

// NewCached wraps delegate with a cache of up to size answers; 0 selects the
// default size.
func NewCached(delegate Dictionary, size int64) (*Cached, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := theine.NewBuilder[string, bool](size).Build()
	if err != nil {
		return nil, fmt.Errorf("building dictionary cache: %w", err)
	}
	return &Cached{delegate: delegate, cache: cache}, nil
}

func (c *Cached) Contains(ctx context.Context, word string) (bool, error) {
	dictionaryCacheTotalCounter.Inc()
	if ok, hit := c.cache.Get(word); hit {
		dictionaryCacheHitCounter.Inc()
		return ok, nil
	}
	ok, err := c.delegate.Contains(ctx, word)
	if err != nil {
		return false, err
	}
	c.cache.Set(word, ok, 1)
	return ok, nil
}

func (c *Cached) Close() {
	c.cache.Close()
}
