package translate

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/srmist/campus-chat-go/internal/ctxutil"
	"github.com/srmist/campus-chat-go/internal/metrics"
)

const cacheName = "translation"

// Cached memoizes successful translations and coalesces concurrent
// identical requests into one upstream call. Failures are not cached.
type Cached struct {
	next    Translator
	cache   *expirable.LRU[string, string]
	group   singleflight.Group
	metrics *metrics.Metrics
}

// NewCached wraps next with a cache of size entries that expire after ttl.
func NewCached(next Translator, size int, ttl time.Duration, m *metrics.Metrics) *Cached {
	return &Cached{
		next:    next,
		cache:   expirable.NewLRU[string, string](size, nil, ttl),
		metrics: m,
	}
}

// Provider returns the wrapped provider.
func (c *Cached) Provider() Provider {
	return c.next.Provider()
}

// Close closes the wrapped translator.
func (c *Cached) Close() error {
	return c.next.Close()
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Translate returns a cached translation or fetches one. The upstream call
// runs on a detached context that keeps request tracing values, so one
// caller giving up does not cancel the call for the others sharing it.
func (c *Cached) Translate(ctx context.Context, text, target string) (string, error) {
	key := target + "\x00" + text
	if out, ok := c.cache.Get(key); ok {
		c.metrics.RecordCacheHit(cacheName)
		return out, nil
	}
	c.metrics.RecordCacheMiss(cacheName)

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx := ctxutil.PreserveTracing(ctx)
		if deadline, ok := ctx.Deadline(); ok {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithDeadline(fetchCtx, deadline)
			defer cancel()
		}

		out, err := c.next.Translate(fetchCtx, text, target)
		if err != nil {
			return "", err
		}
		c.cache.Add(key, out)
		return out, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.RecordSingleflightDedup(cacheName)
		}
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
