package router

import (
	"context"
	"errors"
	"net"

	"ispdesk/internal/domain/gate"
)

// ProbeConnector checks that the device accepts TCP connections on the given
// port. It backs the mac method, which carries no password to log in with.
type ProbeConnector struct {
	dialer net.Dialer
}

func NewProbeConnector() *ProbeConnector {
	return &ProbeConnector{}
}

func (c *ProbeConnector) Connect(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", creds.Address())
	if err != nil {
		return nil, classifyDialError(ctx, err)
	}
	_ = conn.Close()

	return &gate.DeviceSession{Identity: creds.RouterIP}, nil
}

// classifyDialError maps transport failures to connect error kinds.
func classifyDialError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return gate.NewTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return gate.NewTimeoutError(err)
	}
	return gate.NewNetworkError(err)
}
