package lookup

import (
	"context"
	"fmt"

	"github.com/Yiling-J/theine-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"anagram/internal/domain"
)

const defaultCacheSize = 10000

var (
	lookupCacheTotalCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "anagram",
		Name:      "lookup_cache_total_count",
		Help:      "The total number of lookups that went through the lookup cache.",
	})

	lookupCacheHitCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "anagram",
		Name:      "lookup_cache_hit_count",
		Help:      "The total number of lookup cache hits.",
	})
)

// Cached remembers decided answers across runs. Unknown answers and errors
// are never cached.
type Cached struct {
	delegate domain.Lookuper
	cache    *theine.Cache[string, domain.Membership]
}

var _ domain.Lookuper = (*Cached)(nil)

// NewCached wraps delegate with a cache holding up to size words. A size of 0
// selects the default.
func NewCached(delegate domain.Lookuper, size int64) (*Cached, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := theine.NewBuilder[string, domain.Membership](size).Build()
	if err != nil {
		return nil, fmt.Errorf("building lookup cache: %w", err)
	}
	return &Cached{delegate: delegate, cache: cache}, nil
}

func (c *Cached) Lookup(ctx context.Context, word string) (domain.LookupResult, error) {
	lookupCacheTotalCounter.Inc()
	if m, ok := c.cache.Get(word); ok {
		lookupCacheHitCounter.Inc()
		return domain.LookupResult{Word: word, Membership: m}, nil
	}

	res, err := c.delegate.Lookup(ctx, word)
	if err != nil {
		return res, err
	}
	if res.Membership != domain.MembershipUnknown {
		c.cache.Set(word, res.Membership, 1)
	}
	return res, nil
}

// Close stops the cache's maintenance goroutines.
func (c *Cached) Close() {
	c.cache.Close()
}
