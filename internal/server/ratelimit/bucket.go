package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to capacity.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	now        func() time.Time
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now(),
		now:        now,
	}
}

// refill must be called with mu held.
func (b *tokenBucket) refill() time.Time {
	now := b.now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
	return now
}

// take consumes one token if available and reports the bucket state afterwards.
func (b *tokenBucket) take() (ok bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.refill()
	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	resetAt = now
	if b.tokens < b.capacity && b.refillRate > 0 {
		missing := b.capacity - b.tokens
		resetAt = now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
	}
	return ok, remaining, resetAt
}
