package identity

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// loginLimiter throttles login attempts per username with a token bucket.
// Key derivation is deliberately expensive, so unthrottled guessing would
// both enable brute force and burn CPU.
type loginLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	entries map[string]*limiterEntry
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newLoginLimiter(limit rate.Limit, burst int, ttl time.Duration) *loginLimiter {
	return &loginLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*limiterEntry),
	}
}

// allow reports whether another attempt for the given username may proceed
// now. Stale per-user buckets are evicted on the way.
func (l *loginLimiter) allow(username string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[username]
	if e == nil {
		e = &limiterEntry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.entries[username] = e
	}
	e.lastSeen = now

	for k, v := range l.entries {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.entries, k)
		}
	}
	return e.lim.Allow()
}
