package router

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// Breaker opens after maxFailures consecutive failures and rejects calls
// until cooldown elapses, then lets a single trial call through (half-open).
// Errors for which tripsOn returns false are passed through without being
// counted, so a wrong password never opens the circuit. A cancelled call
// leaves the breaker as it was: it neither counts nor resets the failures.
type Breaker struct {
	mu          sync.Mutex
	state       breakerState
	failures    int
	maxFailures int
	cooldown    time.Duration
	openedAt    time.Time
	lastUsed    time.Time
	tripsOn     func(error) bool
	now         func() time.Time
}

func NewBreaker(maxFailures int, cooldown time.Duration, tripsOn func(error) bool) *Breaker {
	if maxFailures < 1 {
		maxFailures = 1
	}
	if tripsOn == nil {
		tripsOn = func(err error) bool { return err != nil }
	}
	return &Breaker{
		maxFailures: maxFailures,
		cooldown:    cooldown,
		tripsOn:     tripsOn,
		now:         time.Now,
	}
}

// Execute runs fn unless the circuit is open.
func (b *Breaker) Execute(fn func() error) error {
	if !b.allowRequest() {
		return ErrCircuitOpen
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastUsed = b.now()

	if errors.Is(err, context.Canceled) {
		// Hand the trial slot back; the next caller probes again.
		if b.state == stateHalfOpen {
			b.state = stateOpen
		}
		return err
	}

	if err != nil && b.tripsOn(err) {
		b.onFailure()
		return err
	}

	b.onSuccess()
	return err
}

func (b *Breaker) allowRequest() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastUsed = b.now()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if b.now().Sub(b.openedAt) >= b.cooldown {
			b.state = stateHalfOpen
			return true
		}
		return false
	case stateHalfOpen:
		return false
	}
	return false
}

// onFailure must be called with b.mu held.
func (b *Breaker) onFailure() {
	b.failures++
	if b.state == stateHalfOpen || b.failures >= b.maxFailures {
		b.state = stateOpen
		b.openedAt = b.now()
	}
}

// onSuccess must be called with b.mu held.
func (b *Breaker) onSuccess() {
	b.failures = 0
	b.state = stateClosed
}

// idleClosed reports whether the circuit is closed and has not been used for
// longer than d.
func (b *Breaker) idleClosed(now time.Time, d time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == stateClosed && now.Sub(b.lastUsed) > d
}
