package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestRateLimiter_RejectsAfterCapacity(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)}
	limiter := newRateLimiter(2, time.Minute, clock.Now)

	ok, _ := limiter.Take("10.0.0.1")
	assert.True(t, ok)
	ok, _ = limiter.Take("10.0.0.1")
	assert.True(t, ok)

	clock.now = clock.now.Add(20 * time.Second)
	ok, wait := limiter.Take("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, wait)

	ok, _ = limiter.Take("10.0.0.2")
	assert.True(t, ok)

	clock.now = clock.now.Add(40 * time.Second)
	ok, _ = limiter.Take("10.0.0.1")
	assert.True(t, ok)
}

func TestNewRateLimiter_DefaultsForNonPositiveSettings(t *testing.T) {
	limiter := newRateLimiter(0, -time.Second, time.Now)

	assert.Equal(t, defaultCapacity, limiter.capacity)
	assert.Equal(t, defaultWindow, limiter.window)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)}
	limiter := newRateLimiter(1, time.Minute, clock.Now)
	limiter.Take("10.0.0.1")

	clock.now = clock.now.Add(2 * time.Hour)
	limiter.evictIdle()

	assert.Empty(t, limiter.buckets)
	limiter.Stop()
	limiter.Stop()
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want int
	}{
		{0, 1},
		{250 * time.Millisecond, 1},
		{1500 * time.Millisecond, 2},
		{40 * time.Second, 40},
		{time.Minute, 60},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, retryAfterSeconds(tt.wait), tt.wait.String())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestRouter(t, 1)

	first := do(router, http.MethodGet, "/calculators", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(router, http.MethodGet, "/calculators", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}
