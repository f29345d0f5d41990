package socrata

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rk-304/nyc-collision-dashboard/internal/domain"
	"github.com/rk-304/nyc-collision-dashboard/internal/observability"
)

// Fetcher retrieves raw collision records.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.RawRecord, error)
}

// CachedFetcher memoizes one fetch result for a TTL. The request parameters
// are fixed at construction time, so a single entry is the whole cache; it
// can be invalidated early with Bust. Errors are never cached so transient
// upstream failures retry on the next call.
type CachedFetcher struct {
	inner Fetcher
	ttl   time.Duration
	clock clockwork.Clock

	metrics *observability.Metrics

	mu        sync.Mutex
	records   []domain.RawRecord
	fetchedAt time.Time
	valid     bool
}

// NewCachedFetcher creates a TTL cache decorator around a fetcher.
func NewCachedFetcher(inner Fetcher, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

// Fetch returns the cached records when fresh, otherwise delegates to the
// inner fetcher. Concurrent callers share a single upstream request.
func (c *CachedFetcher) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.clock.Since(c.fetchedAt) < c.ttl {
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return c.records, nil
	}
	c.metrics.CacheLookups.WithLabelValues("miss").Inc()

	records, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.records = records
	c.fetchedAt = c.clock.Now()
	c.valid = true
	return records, nil
}

// Bust discards the cached entry; the next Fetch goes upstream.
func (c *CachedFetcher) Bust() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.records = nil
}
