package secrets

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls int64
	err   error
}

func (s *countingStore) GetCredentials(_ context.Context, _ string) (entity.APICredentials, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.err != nil {
		return entity.APICredentials{}, s.err
	}
	return entity.APICredentials{ClientID: "id", ClientSecret: "secret"}, nil
}

func TestCache_ServesFromCacheWithinTTL(t *testing.T) {
	inner := &countingStore{}
	cache := NewCache(inner, time.Hour, logger.NewNop(), nil)

	for i := 0; i < 5; i++ {
		creds, err := cache.GetCredentials(context.Background(), "amadeus")
		require.NoError(t, err)
		assert.Equal(t, "id", creds.ClientID)
	}
	assert.EqualValues(t, 1, atomic.LoadInt64(&inner.calls))
}

func TestCache_RefetchesAfterTTL(t *testing.T) {
	inner := &countingStore{}
	cache := NewCache(inner, time.Hour, logger.NewNop(), nil)

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return clock }

	_, err := cache.GetCredentials(context.Background(), "amadeus")
	require.NoError(t, err)

	clock = clock.Add(59 * time.Minute)
	_, err = cache.GetCredentials(context.Background(), "amadeus")
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt64(&inner.calls))

	clock = clock.Add(2 * time.Minute)
	_, err = cache.GetCredentials(context.Background(), "amadeus")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt64(&inner.calls))
}

func TestCache_EntriesAreIndependentPerSecret(t *testing.T) {
	inner := &countingStore{}
	cache := NewCache(inner, time.Hour, logger.NewNop(), nil)

	_, err := cache.GetCredentials(context.Background(), "amadeus")
	require.NoError(t, err)
	_, err = cache.GetCredentials(context.Background(), "other")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt64(&inner.calls))
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	inner := &countingStore{err: apperr.New(apperr.Authentication, "secrets.GetCredentials", "denied")}
	cache := NewCache(inner, time.Hour, logger.NewNop(), nil)

	_, err := cache.GetCredentials(context.Background(), "amadeus")
	require.Error(t, err)

	inner.err = nil
	_, err = cache.GetCredentials(context.Background(), "amadeus")
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt64(&inner.calls))
}

func TestCache_ColdCacheFetchesOnceUnderConcurrency(t *testing.T) {
	inner := &countingStore{}
	cache := NewCache(inner, time.Hour, logger.NewNop(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetCredentials(context.Background(), "amadeus")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, atomic.LoadInt64(&inner.calls))
}
