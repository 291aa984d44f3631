package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestNew(t *testing.T) {
	t.Parallel()
	l := New(10, 5)
	assert.InDelta(t, 10.0, l.maxTokens, 1e-9)
	assert.InDelta(t, 5.0, l.refillRate, 1e-9)
	assert.InDelta(t, 10.0, l.tokens, 1e-9)
}

func TestAllow(t *testing.T) {
	t.Parallel()

	t.Run("allows burst then denies", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newWithClock(3, 1, clock.Now)
		for i := range 3 {
			assert.True(t, l.Allow(), "attempt %d", i+1)
		}
		assert.False(t, l.Allow())
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newWithClock(1, 2, clock.Now)
		require.True(t, l.Allow())
		require.False(t, l.Allow())

		clock.Advance(500 * time.Millisecond)
		assert.True(t, l.Allow())
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		l := newWithClock(2, 10, clock.Now)
		clock.Advance(time.Hour)
		assert.InDelta(t, 2.0, l.Available(), 1e-9)
		assert.True(t, l.IsFull())
	})
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	l := newWithClock(1, 0.5, clock.Now)

	assert.Zero(t, l.RetryAfter())
	require.True(t, l.Allow())
	assert.Equal(t, 2*time.Second, l.RetryAfter())

	clock.Advance(time.Second)
	assert.Equal(t, time.Second, l.RetryAfter())
}

func TestRetryAfter_NoRefill(t *testing.T) {
	t.Parallel()
	l := New(1, 0)
	require.True(t, l.Allow())
	assert.Equal(t, time.Hour, l.RetryAfter())
}

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately with tokens", func(t *testing.T) {
		t.Parallel()
		l := New(1, 1)
		assert.NoError(t, l.Wait(context.Background()))
	})

	t.Run("acquires after refill", func(t *testing.T) {
		t.Parallel()
		l := New(1, 100)
		require.True(t, l.Allow())
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, l.Wait(ctx))
	})

	t.Run("respects cancellation", func(t *testing.T) {
		t.Parallel()
		l := New(1, 0.001)
		require.True(t, l.Allow())
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, l.Wait(ctx), context.DeadlineExceeded)
	})
}

func TestReset(t *testing.T) {
	t.Parallel()
	l := New(2, 0)
	l.Allow()
	l.Allow()
	require.False(t, l.Allow())

	l.Reset()
	assert.True(t, l.Allow())
}

func TestAllow_Concurrent(t *testing.T) {
	t.Parallel()
	l := New(50, 0)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
