package http

import (
	"sync"
	"time"
)

const (
	idleBucketTTL   = 1 * time.Hour
	cleanupInterval = 30 * time.Minute

	defaultCapacity = 1
	defaultWindow   = time.Minute
)

type tokenBucket struct {
	tokens   int
	refilled time.Time
}

// RateLimiter is a per-client token bucket. Each client gets capacity
// requests per window; the bucket is refilled in full once the window has
// passed since its last refill.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*tokenBucket
	clock    func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter and starts evicting idle clients in the
// background. Call Stop to end the eviction loop.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, window, time.Now)
	go rl.evictLoop()
	return rl
}

// newRateLimiter builds a limiter on the given clock without starting the
// eviction loop. Non-positive capacity or window fall back to the defaults.
func newRateLimiter(capacity int, window time.Duration, clock func() time.Time) *RateLimiter {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*tokenBucket),
		clock:    clock,
		done:     make(chan struct{}),
	}
}

// Take spends one token of client's bucket. When the bucket is empty it
// returns false and the time left until the next refill.
func (r *RateLimiter) Take(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	b, ok := r.buckets[client]
	if !ok {
		r.buckets[client] = &tokenBucket{tokens: r.capacity - 1, refilled: now}
		return true, 0
	}

	next := b.refilled.Add(r.window)
	if !now.Before(next) {
		b.tokens = r.capacity
		b.refilled = now
	}

	if b.tokens <= 0 {
		return false, next.Sub(now)
	}
	b.tokens--
	return true, 0
}

func (r *RateLimiter) evictLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	for client, b := range r.buckets {
		if now.Sub(b.refilled) > idleBucketTTL {
			delete(r.buckets, client)
		}
	}
}

// Stop ends the eviction loop. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}
