package router

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/logger"
)

// GuardedConnector adds bounded retries and a per-address circuit breaker
// in front of another Connector. Only network failures are retried; network
// failures and timeouts count toward opening the breaker. Cancelled calls
// count toward neither.
type GuardedConnector struct {
	next        gate.Connector
	retries     uint64
	backoffBase time.Duration
	maxFailures int
	cooldown    time.Duration
	logger      logger.Interface

	mu        sync.Mutex
	breakers  map[string]*Breaker
	lastSweep time.Time
	now       func() time.Time
}

func NewGuardedConnector(
	next gate.Connector,
	retries uint64,
	maxFailures int,
	cooldown time.Duration,
	logger logger.Interface,
) *GuardedConnector {
	return &GuardedConnector{
		next:        next,
		retries:     retries,
		backoffBase: 250 * time.Millisecond,
		maxFailures: maxFailures,
		cooldown:    cooldown,
		logger:      logger,
		breakers:    make(map[string]*Breaker),
		now:         time.Now,
	}
}

func (g *GuardedConnector) Connect(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error) {
	address := creds.Address()

	var session *gate.DeviceSession
	err := g.breakerFor(address).Execute(func() error {
		backoff := retry.WithMaxRetries(g.retries, retry.NewExponential(g.backoffBase))
		return retry.Do(ctx, backoff, func(ctx context.Context) error {
			s, err := g.next.Connect(ctx, method, creds)
			if err != nil {
				if gate.KindOf(err) == gate.ErrorKindNetwork {
					g.logger.Debugw("retrying device connect", "address", address, "error", err)
					return retry.RetryableError(err)
				}
				return err
			}
			session = s
			return nil
		})
	})

	if errors.Is(err, ErrCircuitOpen) {
		g.logger.Warnw("device connect rejected by open circuit", "address", address)
		return nil, gate.NewUnavailableError(err)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// breakerFor returns the breaker of address, creating it on first use.
// Addresses come from the connect form, so closed breakers left idle for
// longer than the cooldown are dropped, at most once per cooldown.
func (g *GuardedConnector) breakerFor(address string) *Breaker {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if now.Sub(g.lastSweep) >= g.cooldown {
		g.lastSweep = now
		for addr, b := range g.breakers {
			if addr != address && b.idleClosed(now, g.cooldown) {
				delete(g.breakers, addr)
			}
		}
	}

	b, ok := g.breakers[address]
	if !ok {
		b = NewBreaker(g.maxFailures, g.cooldown, tripsBreaker)
		b.now = g.now
		b.lastUsed = now
		g.breakers[address] = b
	}
	return b
}

func tripsBreaker(err error) bool {
	switch gate.KindOf(err) {
	case gate.ErrorKindNetwork, gate.ErrorKindTimeout:
		return true
	default:
		return false
	}
}
