package factory

import (
	"context"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/lixi-remit/lixi-landing/pkg/ratelimit"
	pkgredis "github.com/lixi-remit/lixi-landing/pkg/redis"
	"github.com/stretchr/testify/assert"
)

type pingOnlyCache struct{}

func (pingOnlyCache) Ping(context.Context) error { return nil }

func TestDefaultRateLimiterFactory_FallsBackToInMemory(t *testing.T) {
	for name, cache := range map[string]Cache{"nil cache": nil, "no redis client": pingOnlyCache{}} {
		t.Run(name, func(t *testing.T) {
			f := NewDefaultRateLimiterFactory(cache, nil)
			assert.False(t, f.Distributed())

			limiter := f.CreateRateLimiter(30, time.Minute)
			_, ok := limiter.(*ratelimit.InMemoryRateLimiter)
			assert.True(t, ok)

			requests, window := limiter.GetLimitDetails()
			assert.Equal(t, 30, requests)
			assert.Equal(t, time.Minute, window)
		})
	}
}

func TestDefaultRateLimiterFactory_UsesRedisClient(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })

	f := NewDefaultRateLimiterFactory(pkgredis.NewRedisCacheFromClient(client), nil)
	assert.True(t, f.Distributed())

	limiter := f.CreateRateLimiter(30, time.Minute)
	_, inMemory := limiter.(*ratelimit.InMemoryRateLimiter)
	assert.False(t, inMemory)
}
