package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter is the single-process fallback used when Redis is disabled.
type MemoryRateLimiter struct {
	mu    sync.Mutex
	limit Limit
	hits  map[string][]time.Time
	now   func() time.Time
}

func NewMemoryRateLimiter(limit Limit) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		limit: limit,
		hits:  make(map[string][]time.Time),
		now:   time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	if !l.limit.Enabled() {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.limit.Window)

	kept := l.hits[key][:0]
	for _, at := range l.hits[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	allowed := len(kept) < l.limit.Requests
	l.hits[key] = append(kept, now)
	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hits, key)
	return nil
}
