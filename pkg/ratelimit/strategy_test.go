package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRateLimiter_IsLimited_IsPerKey(t *testing.T) {
	limiter := NewInMemoryRateLimiter(1, time.Second)
	ctx := context.Background()

	limited, err := limiter.IsLimited(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, limited, "first request for client-a should pass")

	limited, err = limiter.IsLimited(ctx, "client-a")
	require.NoError(t, err)
	assert.True(t, limited, "second immediate request for client-a should be limited")

	limited, err = limiter.IsLimited(ctx, "client-b")
	require.NoError(t, err)
	assert.False(t, limited, "client-b has its own bucket")
}

func TestInMemoryRateLimiter_AllowsBurstUpToLimit(t *testing.T) {
	limiter := NewInMemoryRateLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		limited, err := limiter.IsLimited(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, limited, "request %d should pass", i+1)
	}

	limited, err := limiter.IsLimited(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, limited)
}

func TestInMemoryRateLimiter_SweepDropsIdleKeys(t *testing.T) {
	limiter := NewInMemoryRateLimiter(5, time.Second)
	_, _ = limiter.IsLimited(context.Background(), "idle")

	limiter.mu.Lock()
	limiter.limiters["idle"].lastSeen = time.Now().Add(-time.Hour)
	limiter.sweep(time.Now().Add(-2 * time.Second))
	_, stillThere := limiter.limiters["idle"]
	limiter.mu.Unlock()

	assert.False(t, stillThere)
}

func TestNewRateLimiter_DefaultsToInMemory(t *testing.T) {
	limiter := NewRateLimiter(&RateLimitConfig{Requests: 10, Window: time.Minute})

	_, ok := limiter.(*InMemoryRateLimiter)
	assert.True(t, ok)

	requests, window := limiter.GetLimitDetails()
	assert.Equal(t, 10, requests)
	assert.Equal(t, time.Minute, window)
}
