package engine

import (
	"sync"
	"time"
)

// RateLimiter enforces a per-session cooldown between answering-pipeline
// calls. Scripted replies are never rate limited.
type RateLimiter struct {
	mu       sync.Mutex
	cooldown time.Duration
	last     map[string]time.Time
	now      func() time.Time
}

// NewRateLimiter allows one pipeline call per session per cooldown.
func NewRateLimiter(cooldown time.Duration) *RateLimiter {
	if cooldown <= 0 {
		cooldown = 2 * time.Second
	}
	return &RateLimiter{
		cooldown: cooldown,
		last:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow reports whether the session may run a pipeline call now. A
// rejected call does not refresh the timestamp, so waiting out the
// cooldown always succeeds.
func (r *RateLimiter) Allow(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if t, ok := r.last[sessionID]; ok && now.Sub(t) < r.cooldown {
		return false
	}
	r.last[sessionID] = now
	return true
}

// Forget drops the session's rate-limit state, e.g. when the session is
// deleted.
func (r *RateLimiter) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.last, sessionID)
}
