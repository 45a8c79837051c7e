// Package ratelimit provides per-client token bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"
)

// Info describes the limit state after a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type entry struct {
	bucket     *tokenBucket
	lastAccess time.Time
}

// Limiter tracks one bucket per client, path and method.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*entry

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLimiter creates a limiter and starts its cleanup loop when enabled.
// A nil config disables limiting.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{}
	}
	l := &Limiter{
		config:  cfg,
		now:     time.Now,
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanupLoop(cfg.CleanupInterval)
	}
	return l
}

// Allow reports whether the client may make this request.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ep := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if ep == nil {
		ep = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if ep.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	ok, remaining, resetAt := l.bucketFor(clientID+":"+path+":"+method, ep).take()
	info := Info{
		Allowed:   ok,
		Limit:     ep.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !ok {
		info.RetryAfter = max(resetAt.Sub(l.now()), 0)
	}
	return ok, info
}

func (l *Limiter) bucketFor(key string, ep *EndpointConfig) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		window := ep.Window
		if window <= 0 {
			window = time.Minute
		}
		burst := ep.Burst
		if burst <= 0 {
			burst = ep.Limit
		}
		e = &entry{bucket: newTokenBucket(burst, float64(ep.Limit)/window.Seconds(), l.now)}
		l.entries[key] = e
	}
	e.lastAccess = l.now()
	return e.bucket
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets untouched for longer than IdleTTL.
func (l *Limiter) evictIdle() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, e := range l.entries {
		if e.lastAccess.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}

// Size returns the number of tracked buckets.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
