package router

import (
	"context"
	"time"

	"ispdesk/internal/domain/gate"
)

const simulatedIdentity = "MikroTik"

// SimulatedConnector accepts any well-formed input after a fixed delay.
// It exists for demos and development without a reachable device.
type SimulatedConnector struct {
	delay time.Duration
}

func NewSimulatedConnector(delay time.Duration) *SimulatedConnector {
	return &SimulatedConnector{delay: delay}
}

func (c *SimulatedConnector) Connect(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error) {
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, gate.NewTimeoutError(ctx.Err())
	case <-timer.C:
	}

	return &gate.DeviceSession{
		Identity: simulatedIdentity,
		Board:    "simulated",
	}, nil
}
