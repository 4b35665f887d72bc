package repositories

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const (
	// DefaultRateTTL is how long a fetched rate table is served without refetching.
	DefaultRateTTL = 30 * time.Second
	// DefaultFetchTimeout bounds one refresh of the rate table.
	DefaultFetchTimeout = 15 * time.Second

	refreshKey = "rates"
)

// RateSource fetches a complete rate table for a fixed base currency.
type RateSource interface {
	FetchRates(ctx context.Context) (*models.RateTable, error)
}

// RateCache holds the last fetched rate table. The table is swapped
// atomically and refreshes are shared by concurrent callers.
type RateCache struct {
	source       RateSource
	fetchTimeout time.Duration
	now          func() time.Time

	entry atomic.Pointer[models.RateTable]
	group singleflight.Group
}

// RateCacheOption customizes a RateCache.
type RateCacheOption func(*RateCache)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) RateCacheOption {
	return func(c *RateCache) {
		c.now = now
	}
}

// WithFetchTimeout bounds a single refresh.
func WithFetchTimeout(d time.Duration) RateCacheOption {
	return func(c *RateCache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// NewRateCache creates an empty cache in front of source.
func NewRateCache(source RateSource, opts ...RateCacheOption) *RateCache {
	c := &RateCache{
		source:       source,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached table while it is younger than ttl, otherwise it
// refreshes it. cached is true when no fetch was needed. A failed refresh
// returns the error and keeps the previous table in place.
func (c *RateCache) Get(ctx context.Context, ttl time.Duration) (table *models.RateTable, cached bool, err error) {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}

	if t := c.fresh(ttl); t != nil {
		logger.Log.Debugw("rate cache hit", "base", t.Base, "age", t.Age(c.now()))
		return t, true, nil
	}

	ch := c.group.DoChan(refreshKey, func() (interface{}, error) {
		// another caller may have completed a refresh in the meantime
		if t := c.fresh(ttl); t != nil {
			return t, nil
		}
		return c.refresh(ctx)
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		return res.Val.(*models.RateTable), false, nil
	}
}

// Peek returns the last successfully fetched table regardless of its age.
func (c *RateCache) Peek() (*models.RateTable, bool) {
	t := c.entry.Load()
	return t, t != nil
}

func (c *RateCache) fresh(ttl time.Duration) *models.RateTable {
	t := c.entry.Load()
	if t == nil || t.Age(c.now()) >= ttl {
		return nil
	}
	return t
}

func (c *RateCache) refresh(ctx context.Context) (*models.RateTable, error) {
	// detached so that a cancelled first caller does not fail the others
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
	defer cancel()

	logger.Log.Debugw("rate cache miss, fetching rate table")
	t, err := c.source.FetchRates(fetchCtx)
	if err != nil {
		logger.Log.Errorw("failed to refresh rate table", "error", err)
		return nil, err
	}

	fetchedAt := c.now()
	if prev := c.entry.Load(); prev != nil && !fetchedAt.After(prev.FetchedAt) {
		fetchedAt = prev.FetchedAt.Add(time.Nanosecond)
	}
	t = t.WithFetchedAt(fetchedAt)
	c.entry.Store(t)

	logger.Log.Infow("rate table refreshed", "base", t.Base, "rates", len(t.Rates), "date", t.Date)
	return t, nil
}
