// Package throttle rate-limits repeated notices by key.
package throttle

import (
	"sync"
	"time"
)

// Limiter allows a given key through at most once per TTL. The controller
// uses it so a persistent sensor fault does not redraw the same display
// notice every sampling cycle.
type Limiter struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
}

func New(ttl time.Duration) *Limiter {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Limiter{ttl: ttl, seen: make(map[string]time.Time)}
}

// Allow reports whether key may be acted on now, and if so starts its TTL
// window.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if exp, ok := l.seen[key]; ok && now.Before(exp) {
		return false
	}
	for k, exp := range l.seen {
		if now.After(exp) {
			delete(l.seen, k)
		}
	}
	l.seen[key] = now.Add(l.ttl)
	return true
}

// Reset forgets key so its next occurrence is allowed immediately.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seen, key)
}
