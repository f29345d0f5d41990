package socrata_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rk-304/nyc-collision-dashboard/internal/adapter/socrata"
	"github.com/rk-304/nyc-collision-dashboard/internal/domain"
	"github.com/rk-304/nyc-collision-dashboard/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	records []domain.RawRecord
	err     error
	calls   int
}

func (f *countingFetcher) Fetch(_ context.Context) ([]domain.RawRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func testRecords() []domain.RawRecord {
	return []domain.RawRecord{
		{"crash_date": "2023-01-01T00:00:00.000", "latitude": "40.7", "longitude": "-74.0", "on_street_name": "BROADWAY", "borough": "MANHATTAN"},
	}
}

func TestCachedFetcher_MemoizesWithinTTL(t *testing.T) {
	inner := &countingFetcher{records: testRecords()}
	clock := clockwork.NewFakeClock()
	cache := socrata.NewCachedFetcher(inner, 5*time.Minute, clock, observability.NewMetricsForTesting())

	first, err := cache.Fetch(context.Background())
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)

	second, err := cache.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)
}

func TestCachedFetcher_ExpiresAfterTTL(t *testing.T) {
	inner := &countingFetcher{records: testRecords()}
	clock := clockwork.NewFakeClock()
	cache := socrata.NewCachedFetcher(inner, 5*time.Minute, clock, observability.NewMetricsForTesting())

	_, err := cache.Fetch(context.Background())
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)

	_, err = cache.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedFetcher_BustForcesRefetch(t *testing.T) {
	inner := &countingFetcher{records: testRecords()}
	clock := clockwork.NewFakeClock()
	cache := socrata.NewCachedFetcher(inner, time.Hour, clock, observability.NewMetricsForTesting())

	_, err := cache.Fetch(context.Background())
	require.NoError(t, err)

	cache.Bust()

	_, err = cache.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedFetcher_ErrorsAreNotCached(t *testing.T) {
	inner := &countingFetcher{err: errors.New("upstream down")}
	clock := clockwork.NewFakeClock()
	cache := socrata.NewCachedFetcher(inner, time.Hour, clock, observability.NewMetricsForTesting())

	_, err := cache.Fetch(context.Background())
	require.Error(t, err)

	// Recovery: the next call goes upstream again and succeeds.
	inner.err = nil
	inner.records = testRecords()

	records, err := cache.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, inner.calls)
}
