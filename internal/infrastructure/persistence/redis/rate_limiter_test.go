package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.1", "/api/v1/profiles/generate")

	for i := 0; i < 3; i++ {
		ok, remaining, err := limiter.Allow(ctx, key, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i)
		assert.Equal(t, 2-i, remaining, "request %d", i)
	}

	ok, remaining, err := limiter.Allow(ctx, key, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, remaining)
}

func TestRateLimiterRejectedRequestsAreNotRecorded(t *testing.T) {
	client, mr := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.3", "/x")

	for i := 0; i < 5; i++ {
		_, _, err := limiter.Allow(ctx, key, 2, time.Minute)
		require.NoError(t, err)
	}

	members, err := mr.ZMembers(key)
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Positive(t, mr.TTL(key))
}

func TestRateLimiterConcurrentRequestsRespectLimit(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.4", "/api/v1/profiles/generate")

	const limit, workers = 5, 50
	var allowed atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, _, err := limiter.Allow(ctx, key, limit, time.Minute)
			if assert.NoError(t, err) && ok {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(limit), allowed.Load())
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()

	ok, _, err := limiter.Allow(ctx, BuildRateLimitKey("a", "/x"), 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, remaining, err := limiter.Allow(ctx, BuildRateLimitKey("b", "/x"), 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, remaining)
}

func TestRateLimiterWindowSlides(t *testing.T) {
	client, _ := newTestClient(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()
	key := BuildRateLimitKey("10.0.0.2", "/x")

	ok, _, err := limiter.Allow(ctx, key, 1, 50*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, err = limiter.Allow(ctx, key, 1, 50*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)

	time.Sleep(80 * time.Millisecond)
	ok, _, err = limiter.Allow(ctx, key, 1, 50*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiterErrorsWhenRedisDown(t *testing.T) {
	client, mr := newTestClient(t)
	limiter := NewRateLimiter(client)
	mr.Close()

	_, _, err := limiter.Allow(context.Background(), BuildRateLimitKey("x", "/x"), 1, time.Minute)
	assert.Error(t, err)
}

func TestBuildRateLimitKey(t *testing.T) {
	assert.Equal(t, "silvernest:ratelimit:1.2.3.4:/api/v1/profiles/preview", BuildRateLimitKey("1.2.3.4", "/api/v1/profiles/preview"))
}
