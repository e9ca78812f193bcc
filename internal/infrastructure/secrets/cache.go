package secrets

import (
	"context"
	"sync"
	"time"

	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"
	"lounge-advisor-service/pkg/logger"
	"lounge-advisor-service/pkg/metrics"
)

type cachedCredentials struct {
	creds     entity.APICredentials
	fetchedAt time.Time
}

// Cache is a process-wide, mutex-guarded TTL cache in front of a
// CredentialStore. It is shared across overlapping invocations on a warm
// process; the mutex is held across the inner fetch so a cold-cache
// refresh never runs twice concurrently.
type Cache struct {
	mu      sync.Mutex
	inner   repository.CredentialStore
	ttl     time.Duration
	entries map[string]cachedCredentials
	logger  logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ repository.CredentialStore = (*Cache)(nil)

// NewCache wraps inner with a TTL cache. Constructed once at process
// start and passed by reference into the gateway.
func NewCache(inner repository.CredentialStore, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *Cache {
	return &Cache{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cachedCredentials),
		logger:  log,
		metrics: m,
		now:     time.Now,
	}
}

// GetCredentials returns the cached value when fresh, otherwise performs
// one live fetch while other callers wait on the lock.
func (c *Cache) GetCredentials(ctx context.Context, name string) (entity.APICredentials, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		c.countLookup("hit")
		return e.creds, nil
	}
	c.countLookup("miss")

	creds, err := c.inner.GetCredentials(ctx, name)
	if err != nil {
		return entity.APICredentials{}, err
	}

	c.entries[name] = cachedCredentials{creds: creds, fetchedAt: c.now()}
	c.logger.Info("Refreshed upstream credentials", "secret", name)
	return creds, nil
}

func (c *Cache) countLookup(outcome string) {
	if c.metrics != nil {
		c.metrics.CacheLookups.WithLabelValues("credentials", outcome).Inc()
	}
}
