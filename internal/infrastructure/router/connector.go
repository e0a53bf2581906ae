// Package router talks to the network-management device: it opens gate
// sessions and samples router health for the dashboard.
package router

import (
	"context"
	"fmt"

	"ispdesk/internal/domain/gate"
	"ispdesk/internal/shared/config"
	"ispdesk/internal/shared/logger"
)

const (
	ModeSimulated = "simulated"
	ModeRouterOS  = "routeros"
	ModeProbe     = "probe"
)

// methodConnector routes each auth method to its own connector.
type methodConnector struct {
	credentials gate.Connector
	mac         gate.Connector
}

func (c *methodConnector) Connect(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error) {
	if method == gate.AuthMethodMAC {
		return c.mac.Connect(ctx, method, creds)
	}
	return c.credentials.Connect(ctx, method, creds)
}

// NewConnector builds the connector for the configured mode, wrapped with
// retries and a circuit breaker.
func NewConnector(cfg config.RouterConfig, log logger.Interface) (gate.Connector, error) {
	var inner gate.Connector
	switch cfg.Mode {
	case "", ModeSimulated:
		inner = NewSimulatedConnector(cfg.SimulatedDelay())
	case ModeRouterOS:
		inner = &methodConnector{
			credentials: NewRouterOSConnector(),
			mac:         NewProbeConnector(),
		}
	case ModeProbe:
		inner = NewProbeConnector()
	default:
		return nil, fmt.Errorf("unknown router mode: %s", cfg.Mode)
	}

	log.Infow("device connector configured", "mode", cfg.Mode)
	return NewGuardedConnector(
		inner,
		cfg.ConnectRetries,
		cfg.BreakerMaxFailures,
		cfg.BreakerCooldown(),
		log.Named("router"),
	), nil
}
