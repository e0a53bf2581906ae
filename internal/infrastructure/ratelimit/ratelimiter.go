// Package ratelimit throttles connect attempts per client so the gate cannot
// be used to brute-force device credentials.
package ratelimit

import (
	"context"
	"time"
)

// Limit is a sliding window: at most Requests within Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Enabled reports whether the limit restricts anything.
func (l Limit) Enabled() bool {
	return l.Requests > 0 && l.Window > 0
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// PerMinute builds the limit used for connect attempts.
func PerMinute(requests int) Limit {
	return Limit{Requests: requests, Window: time.Minute}
}
